package comment

import (
	"sort"
	"time"

	"forum/pkg/user"
)

type Comment struct {
	Id       int64
	PostId   int64
	ParentId *int64 // nil for top-level comments
	Author   *user.User
	Content  string
	// Votes is stored but nothing changes it yet.
	Votes   int
	Created time.Time
	Updated time.Time
}

// View is one node of a rendered comment thread.
type View struct {
	Id       int64     `json:"id"`
	Author   string    `json:"author"`
	AuthorId int64     `json:"authorId"`
	Content  string    `json:"content"`
	Votes    int       `json:"votes"`
	Created  time.Time `json:"createdAt"`
	Updated  time.Time `json:"updatedAt"`
	Replies  []*View   `json:"replies"`
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentId == nil
}

func (c *Comment) View() *View {
	v := &View{
		Id:      c.Id,
		Content: c.Content,
		Votes:   c.Votes,
		Created: c.Created,
		Updated: c.Updated,
		Replies: []*View{},
	}
	if c.Author != nil {
		v.Author = c.Author.Username
		v.AuthorId = c.Author.Id
	}
	return v
}

// sortChronological orders comments by creation time, then id.
func sortChronological(comments []*Comment) []*Comment {
	sorted := make([]*Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Created.Equal(b.Created) {
			return a.Created.Before(b.Created)
		}
		return a.Id < b.Id
	})
	return sorted
}

// childrenIndex groups comments by parent id. Top-level comments are
// under key 0. Each group keeps the order of comments.
func childrenIndex(comments []*Comment) map[int64][]*Comment {
	idx := make(map[int64][]*Comment, len(comments))
	for _, c := range comments {
		var parent int64
		if c.ParentId != nil {
			parent = *c.ParentId
		}
		idx[parent] = append(idx[parent], c)
	}
	return idx
}

// BuildThread turns the flat comments of one post into a forest of views:
// top-level comments, each carrying its whole reply subtree. Every level is
// in creation order. Comments whose parent is not in the input are dropped
// together with their replies.
func BuildThread(comments []*Comment) []*View {
	children := childrenIndex(sortChronological(comments))

	type frame struct {
		id   int64
		view *View
	}

	roots := make([]*View, 0, len(children[0]))
	stack := make([]frame, 0, len(comments))
	for _, c := range children[0] {
		v := c.View()
		roots = append(roots, v)
		stack = append(stack, frame{id: c.Id, view: v})
	}

	seen := make(map[int64]bool, len(comments))
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[top.id] {
			continue
		}
		seen[top.id] = true

		for _, child := range children[top.id] {
			v := child.View()
			top.view.Replies = append(top.view.Replies, v)
			stack = append(stack, frame{id: child.Id, view: v})
		}
	}
	return roots
}

// CollectSubtree returns rootId followed by the ids of all its descendants
// found in comments.
func CollectSubtree(rootId int64, comments []*Comment) []int64 {
	children := childrenIndex(comments)

	ids := []int64{rootId}
	seen := map[int64]bool{rootId: true}
	for i := 0; i < len(ids); i++ {
		for _, child := range children[ids[i]] {
			if seen[child.Id] {
				continue
			}
			seen[child.Id] = true
			ids = append(ids, child.Id)
		}
	}
	return ids
}
