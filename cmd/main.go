package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"forum/pkg/comment"
	"forum/pkg/community"
	"forum/pkg/config"
	"forum/pkg/logger"
	"forum/pkg/metrics"
	"forum/pkg/middleware"
	"forum/pkg/notification"
	"forum/pkg/post"
	"forum/pkg/sessions"
	"forum/pkg/storage"
	"forum/pkg/user"
	"forum/pkg/user/api"
	"forum/pkg/voting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("main: can't read config:", err)
	}
	zl := logger.Run(cfg.LogLevel)
	defer zl.Sync() //nolint:errcheck

	if cfg.SecretKey == "" {
		zl.Fatal("main: SECRET_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		zl.Fatalf("main: unable to reach PostgreSQL: %v", err)
	}
	defer db.Close()
	if err := storage.Migrate(ctx, db); err != nil {
		zl.Fatalf("main: schema migration failed: %v", err)
	}

	redisPool := sessions.NewRedisPool(cfg.RedisAddr)
	defer redisPool.Close()

	mongoCtx, mongoCtxCancel := context.WithTimeout(ctx, 3*time.Second)
	defer mongoCtxCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zl.Fatalf("main: can't connect to MongoDB: %v", err)
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		zl.Fatalf("main: unable to connect to MongoDB: %v", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			zl.Errorf("main: failed disconnecting from MongoDB: %v", err)
		}
	}()

	usersRepo := user.NewUserRepo(db)
	communityRepo := community.NewCommunityRepo(db)
	postsRepo := post.NewPostRepo(db)
	commentsRepo := comment.NewCommentRepo(db)
	votesRepo := voting.NewVoteRepo(db)
	notificationsRepo := notification.NewNotificationRepo(
		mongoClient.Database(cfg.MongoDB).Collection("notifications"))

	sessionManager := sessions.NewSessionManager(cfg.SecretKey, redisPool)
	voteService := voting.NewService(votesRepo)
	emitter := notification.NewEmitter(notificationsRepo)
	commentManager := comment.NewManager(commentsRepo, postsRepo, emitter)

	if cfg.Seed {
		// Generate fake content to have better UI experience
		seed(logger.WithLogger(ctx, zl), seedRepos{
			users:       usersRepo,
			communities: communityRepo,
			posts:       postsRepo,
			comments:    commentManager,
			votes:       voteService,
		})
	}

	userHandler := api.NewUserHandler(usersRepo, sessionManager)
	postHandler := post.NewPostHandler(postsRepo, voteService, votesRepo)
	commentHandler := comment.NewCommentHandler(commentManager)
	communityHandler := community.NewCommunityHandler(communityRepo)
	notificationHandler := notification.NewNotificationHandler(notificationsRepo)

	r := mux.NewRouter()
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	a := r.PathPrefix("/api").Subrouter()
	auth := middleware.RequireAuth

	// User
	a.HandleFunc("/register", userHandler.Register).Methods("POST")
	a.HandleFunc("/login", userHandler.LogIn).Methods("POST")

	// Posts
	a.HandleFunc("/posts", postHandler.List).Methods("GET")
	a.HandleFunc("/posts", auth(postHandler.Add)).Methods("POST")
	a.HandleFunc("/posts/c/{community}", postHandler.ByCommunity).Methods("GET")
	a.HandleFunc("/posts/{post_id:[0-9]+}", postHandler.Get).Methods("GET")
	a.HandleFunc("/posts/{post_id:[0-9]+}", auth(postHandler.Update)).Methods("PUT")
	a.HandleFunc("/posts/{post_id:[0-9]+}", auth(postHandler.Delete)).Methods("DELETE")
	a.HandleFunc("/posts/{post_id:[0-9]+}/upvote", auth(postHandler.Upvote)).Methods("POST")
	a.HandleFunc("/posts/{post_id:[0-9]+}/downvote", auth(postHandler.Downvote)).Methods("POST")

	// Comments
	a.HandleFunc("/posts/{post_id:[0-9]+}/comments", commentHandler.List).Methods("GET")
	a.HandleFunc("/posts/{post_id:[0-9]+}/comments", auth(commentHandler.Add)).Methods("POST")
	a.HandleFunc("/comments/{comment_id:[0-9]+}/replies", auth(commentHandler.Reply)).Methods("POST")
	a.HandleFunc("/comments/{comment_id:[0-9]+}", auth(commentHandler.Update)).Methods("PUT")
	a.HandleFunc("/comments/{comment_id:[0-9]+}", auth(commentHandler.Delete)).Methods("DELETE")

	// Communities
	a.HandleFunc("/communities", communityHandler.List).Methods("GET")
	a.HandleFunc("/communities", auth(communityHandler.Create)).Methods("POST")
	a.HandleFunc("/communities/{name}", communityHandler.Get).Methods("GET")

	// My activity
	a.HandleFunc("/users/me/posts", auth(postHandler.Mine)).Methods("GET")
	a.HandleFunc("/users/me/saved-posts", auth(postHandler.Saved)).Methods("GET")
	a.HandleFunc("/users/me/saved-posts/{post_id:[0-9]+}", auth(postHandler.ToggleSaved)).Methods("POST")
	a.HandleFunc("/users/me/communities", auth(communityHandler.Mine)).Methods("GET")
	a.HandleFunc("/users/me/communities/{name}", auth(communityHandler.Join)).Methods("POST")
	a.HandleFunc("/users/me/communities/{name}", auth(communityHandler.Leave)).Methods("DELETE")

	// Notifications
	a.HandleFunc("/notifications", auth(notificationHandler.List)).Methods("GET")
	a.HandleFunc("/notifications/read-all", auth(notificationHandler.MarkAllRead)).Methods("POST")
	a.HandleFunc("/notifications/{notification_id}/read", auth(notificationHandler.MarkRead)).Methods("POST")

	logMiddleware := middleware.NewLoggingMiddleware(zl)
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)
	r.Use(middleware.NewAuthMiddleware(sessionManager, usersRepo).Middleware)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zl.Errorf("main: shutdown: %v", err)
		}
	}()

	zl.Infof("Serving at http://localhost%s/", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zl.Fatalf("main: server failed: %v", err)
	}

	// in-flight notifications are stored before Mongo goes away
	emitter.Close()
	zl.Info("main: stopped")
}
