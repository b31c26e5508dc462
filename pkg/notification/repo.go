package notification

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"forum/pkg/common"
)

type Repo struct {
	notifications IMongoCollection
}

func NewNotificationRepo(coll *mongo.Collection) *Repo {
	return &Repo{
		notifications: &MongoCollection{Coll: coll},
	}
}

func (r *Repo) Add(ctx context.Context, n *Notification) error {
	_, err := r.notifications.InsertOne(ctx, n)
	if err != nil {
		return fmt.Errorf("notification/repo: failed inserting notification: %w", err)
	}
	return nil
}

// ListByRecipient returns the user's notifications, newest first.
func (r *Repo) ListByRecipient(ctx context.Context, recipientId int64) ([]*Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cursor, err := r.notifications.Find(ctx, bson.M{"recipient_id": recipientId}, opts)
	if err != nil {
		return nil, fmt.Errorf("notification/repo: failed finding notifications: %w", err)
	}
	defer cursor.Close(ctx)

	res := []*Notification{}
	if err := cursor.All(ctx, &res); err != nil {
		return nil, fmt.Errorf("notification/repo: failed getting notifications from cursor: %w", err)
	}
	return res, nil
}

// MarkRead flags one notification as read. Someone else's notification
// is reported as not found.
func (r *Repo) MarkRead(ctx context.Context, id string, recipientId int64) error {
	filter := bson.M{"id": id, "recipient_id": recipientId}
	update := bson.M{"$set": bson.M{"read": true}}
	res, err := r.notifications.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("notification/repo: failed marking %s read: %w", id, err)
	}
	if res.Matched() == 0 {
		return common.NotFoundf("notification %s not found", id)
	}
	return nil
}

// MarkAllRead returns how many notifications changed.
func (r *Repo) MarkAllRead(ctx context.Context, recipientId int64) (int64, error) {
	filter := bson.M{"recipient_id": recipientId, "read": false}
	update := bson.M{"$set": bson.M{"read": true}}
	res, err := r.notifications.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("notification/repo: failed marking all read: %w", err)
	}
	return res.Modified(), nil
}
