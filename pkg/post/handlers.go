package post

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=post

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"forum/pkg/authz"
	. "forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/sessions"
	"forum/pkg/user"
	"forum/pkg/voting"
)

type IPostRepo interface {
	Add(ctx context.Context, p *Post, communityName string) (*Post, error)
	GetById(context.Context, int64) (*Post, error)
	Update(context.Context, *Post) error
	Delete(context.Context, int64) error

	List(context.Context, Page) ([]*Post, int, error)
	ByCommunity(ctx context.Context, name string, page Page) ([]*Post, int, error)
	ByAuthor(ctx context.Context, userId int64, page Page) ([]*Post, int, error)
	SavedBy(ctx context.Context, userId int64, page Page) ([]*Post, int, error)

	ToggleSaved(ctx context.Context, userId, postId int64) (bool, error)
}

type IVoter interface {
	Vote(ctx context.Context, postId int64, voter *user.User, d voting.Direction) (int, error)
}

type IVoteLookup interface {
	UserVotes(ctx context.Context, userId int64, postIds []int64) (map[int64]voting.Direction, error)
}

type PostHandler struct {
	PostRepo IPostRepo
	Voter    IVoter
	MyVotes  IVoteLookup
}

func NewPostHandler(postRepo IPostRepo, voter IVoter, myVotes IVoteLookup) *PostHandler {
	return &PostHandler{
		PostRepo: postRepo,
		Voter:    voter,
		MyVotes:  myVotes,
	}
}

type listFunc func(ctx context.Context, page Page) ([]*Post, int, error)

func (ph *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	ph.writePage(w, r, ph.PostRepo.List)
}

func (ph *PostHandler) ByCommunity(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["community"]
	ph.writePage(w, r, func(ctx context.Context, page Page) ([]*Post, int, error) {
		return ph.PostRepo.ByCommunity(ctx, name, page)
	})
}

func (ph *PostHandler) Mine(w http.ResponseWriter, r *http.Request) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	ph.writePage(w, r, func(ctx context.Context, page Page) ([]*Post, int, error) {
		return ph.PostRepo.ByAuthor(ctx, me.Id, page)
	})
}

func (ph *PostHandler) Saved(w http.ResponseWriter, r *http.Request) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	ph.writePage(w, r, func(ctx context.Context, page Page) ([]*Post, int, error) {
		return ph.PostRepo.SavedBy(ctx, me.Id, page)
	})
}

func (ph *PostHandler) writePage(w http.ResponseWriter, r *http.Request, list listFunc) {
	page := ParsePage(r)
	posts, total, err := list(r.Context(), page)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	views, err := ph.views(r.Context(), posts)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, &PageResult{
		Content:       views,
		Page:          page.Number,
		Size:          page.Size,
		TotalElements: total,
	})
}

// views renders posts with the viewer's own votes. Anonymous viewers get none.
func (ph *PostHandler) views(ctx context.Context, posts []*Post) ([]*View, error) {
	var viewerId int64
	if viewer, err := sessions.GetAuthUser(ctx); err == nil {
		viewerId = viewer.Id
	}

	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.Id
	}
	mine, err := ph.MyVotes.UserVotes(ctx, viewerId, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*View, len(posts))
	for i, p := range posts {
		views[i] = p.View(mine[p.Id])
	}
	return views, nil
}

func (ph *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postId, err := IdVar(r, "post_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}
	post, err := ph.PostRepo.GetById(r.Context(), postId)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	views, err := ph.views(r.Context(), []*Post{post})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, views[0])
}

func (ph *PostHandler) Add(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}

	req := new(CreateRequest)
	if err := ParseAndValidate(r.Body, req); err != nil {
		WriteError(w, r, err)
		return
	}

	post, err := ph.PostRepo.Add(r.Context(), &Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  author,
	}, req.Community)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	logger.Log(r.Context()).Infof("post %d created by user %d in %q", post.Id, author.Id, req.Community)
	WriteJSON(w, http.StatusCreated, post.View(voting.None))
}

func (ph *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	req := new(UpdateRequest)
	if err := ParseReqBody(r.Body, req); err != nil {
		WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	post, err := ph.ownPost(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := Validate(req); err != nil {
		WriteError(w, r, err)
		return
	}

	post.Title, post.Content = req.Title, req.Content
	if err := ph.PostRepo.Update(r.Context(), post); err != nil {
		WriteError(w, r, err)
		return
	}
	views, err := ph.views(r.Context(), []*Post{post})
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, views[0])
}

func (ph *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	post, err := ph.ownPost(r)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	if err := ph.PostRepo.Delete(r.Context(), post.Id); err != nil {
		WriteError(w, r, err)
		return
	}
	logger.Log(r.Context()).Infof("post %d deleted", post.Id)
	w.WriteHeader(http.StatusNoContent)
}

// ownPost loads the routed post and checks the caller wrote it.
func (ph *PostHandler) ownPost(r *http.Request) (*Post, error) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		return nil, err
	}
	postId, err := IdVar(r, "post_id")
	if err != nil {
		return nil, err
	}
	post, err := ph.PostRepo.GetById(r.Context(), postId)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(me, post.Author.Id, "post"); err != nil {
		return nil, err
	}
	return post, nil
}

func (ph *PostHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	ph.vote(w, r, voting.Up)
}

func (ph *PostHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	ph.vote(w, r, voting.Down)
}

func (ph *PostHandler) vote(w http.ResponseWriter, r *http.Request, d voting.Direction) {
	voter, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	postId, err := IdVar(r, "post_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	votes, err := ph.Voter.Vote(r.Context(), postId, voter, d)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, votes)
}

func (ph *PostHandler) ToggleSaved(w http.ResponseWriter, r *http.Request) {
	me, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		WriteError(w, r, err)
		return
	}
	postId, err := IdVar(r, "post_id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	saved, err := ph.PostRepo.ToggleSaved(r.Context(), me.Id, postId)
	if err != nil {
		WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, saved)
}
