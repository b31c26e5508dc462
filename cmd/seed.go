package main

import (
	"context"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"

	"forum/pkg/comment"
	"forum/pkg/common"
	"forum/pkg/community"
	"forum/pkg/logger"
	"forum/pkg/post"
	"forum/pkg/user"
	"forum/pkg/voting"
)

var (
	f             = faker.New()
	onePassForAll = "sdfsdfsdf"
	themes        = []community.ColorTheme{
		community.Blue, community.Green, community.Red, community.Purple, community.Orange,
		community.Yellow, community.Indigo, community.Pink, community.Rose, community.Amber,
	}
)

type (
	IUserRepo interface {
		Add(context.Context, *user.User) (int64, error)
		GetAll(context.Context) ([]*user.User, error)
	}

	ICommunityRepo interface {
		Add(context.Context, *community.Community) error
		Join(ctx context.Context, userId, communityId int64) error
	}

	IPostRepo interface {
		Add(ctx context.Context, p *post.Post, communityName string) (*post.Post, error)
	}

	ICommentManager interface {
		CreateTopLevel(ctx context.Context, postId int64, author *user.User, content string) (*comment.View, error)
		CreateReply(ctx context.Context, parentId int64, author *user.User, content string) (*comment.View, error)
	}

	IVoter interface {
		Vote(ctx context.Context, postId int64, voter *user.User, d voting.Direction) (int, error)
	}

	seedRepos struct {
		users       IUserRepo
		communities ICommunityRepo
		posts       IPostRepo
		comments    ICommentManager
		votes       IVoter
	}
)

// seed fills an empty database with demo content. It does nothing when
// users already exist, so restarts with SEED=true are harmless.
func seed(ctx context.Context, repos seedRepos) {
	log := logger.Log(ctx)

	existing, err := repos.users.GetAll(ctx)
	if err != nil {
		log.Fatalf("seed: can't get all users: %v", err)
	}
	if len(existing) > 0 {
		log.Infof("seed: %d users exist, skipping", len(existing))
		return
	}

	authors := createAuthors(ctx, repos.users)
	communities := createCommunities(ctx, repos.communities, authors)

	for i := 0; i < 12; i++ {
		author := randUser(authors)
		p, err := repos.posts.Add(ctx, &post.Post{
			Title:   genTitle(),
			Content: genText(),
			Author:  author,
		}, communities[rand.Intn(len(communities))].Name)
		if err != nil {
			log.Fatalf("seed: can't add post: %v", err)
		}
		genThread(ctx, repos.comments, p.Id, authors)
		genVotes(ctx, repos.votes, p.Id, authors)
	}
	log.Infof("seed: %d users, %d communities and 12 posts created", len(authors), len(communities))
}

func createAuthors(ctx context.Context, userRepo IUserRepo) []*user.User {
	// User for experiments (not random)
	authors := []*user.User{addUser(ctx, userRepo, "pike")}
	seen := map[string]bool{"pike": true}
	for len(authors) < 6 {
		username := strings.ToLower(f.Person().FirstName())
		if seen[username] {
			continue
		}
		seen[username] = true
		authors = append(authors, addUser(ctx, userRepo, username))
	}
	return authors
}

func addUser(ctx context.Context, userRepo IUserRepo, username string) *user.User {
	u := &user.User{
		Username: username,
		Password: common.HashPass(onePassForAll, common.RandStringRunes(8)), // salt must have len of 8
	}
	id, err := userRepo.Add(ctx, u)
	if err != nil {
		logger.Log(ctx).Fatalf("seed: can't add user %q: %v", username, err)
	}
	u.Id = id
	return u
}

func createCommunities(ctx context.Context, repo ICommunityRepo, members []*user.User) []*community.Community {
	names := []string{"programming", "music", "videos", "funny", "news", "fashion"}
	res := make([]*community.Community, 0, len(names))
	for _, name := range names {
		c := &community.Community{
			Name:        name,
			Description: f.Lorem().Sentence(6),
			ColorTheme:  themes[rand.Intn(len(themes))],
			CreatorId:   randUser(members).Id,
		}
		if len(c.Description) > 100 {
			c.Description = c.Description[:100]
		}
		if err := repo.Add(ctx, c); err != nil {
			logger.Log(ctx).Fatalf("seed: can't add community %q: %v", name, err)
		}
		for _, m := range members {
			if rand.Intn(2) == 0 {
				continue
			}
			if err := repo.Join(ctx, m.Id, c.Id); err != nil {
				logger.Log(ctx).Fatalf("seed: %s can't join %q: %v", m.Username, name, err)
			}
		}
		res = append(res, c)
	}
	return res
}

// genThread adds a few top-level comments, each with a random chain of replies.
func genThread(ctx context.Context, comments ICommentManager, postId int64, users []*user.User) {
	for i := rand.Intn(4); i >= 0; i-- {
		top, err := comments.CreateTopLevel(ctx, postId, randUser(users), genText())
		if err != nil {
			logger.Log(ctx).Fatalf("seed: can't add comment: %v", err)
		}
		parentId := top.Id
		for depth := rand.Intn(4); depth > 0; depth-- {
			reply, err := comments.CreateReply(ctx, parentId, randUser(users), genText())
			if err != nil {
				logger.Log(ctx).Fatalf("seed: can't add reply: %v", err)
			}
			if rand.Intn(2) == 0 {
				parentId = reply.Id
			}
		}
	}
}

func genVotes(ctx context.Context, votes IVoter, postId int64, users []*user.User) {
	for _, u := range users {
		d := voting.None
		switch rand.Intn(3) {
		case 0:
			d = voting.Up
		case 1:
			d = voting.Down
		}
		if d == voting.None {
			continue
		}
		if _, err := votes.Vote(ctx, postId, u, d); err != nil {
			logger.Log(ctx).Fatalf("seed: can't vote: %v", err)
		}
	}
}

func genTitle() string {
	return strings.Join(f.Lorem().Words(rand.Intn(5)+3), " ")
}

func genText() string {
	return f.Lorem().Paragraph(rand.Intn(3) + 2)
}

func randUser(users []*user.User) *user.User {
	return users[rand.Intn(len(users))]
}
