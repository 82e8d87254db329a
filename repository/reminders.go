package repository

import (
	"context"
	"os"
	"time"

	"notewell/model"
	"notewell/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RemindersRepo struct {
	MongoCollection *mongo.Collection
}

func GetRemindersRepo(client *mongo.Client) *RemindersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("REMINDERS_COLLECTION", "reminders")
	return &RemindersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *RemindersRepo) CreateReminder(ctx context.Context, reminder *model.Reminder) error {
	timer := utils.TrackDBOperation("insert", "reminders")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, reminder)
	if err != nil {
		utils.TrackError("database", "reminder_creation_failed")
		return err
	}
	return nil
}

func (r *RemindersRepo) GetReminder(ctx context.Context, reminderID, userID string) (*model.Reminder, error) {
	timer := utils.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	var reminder model.Reminder
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": reminderID, "user_id": userID}).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *RemindersRepo) GetUserReminders(ctx context.Context, userID string) ([]*model.Reminder, error) {
	return r.findReminders(ctx, bson.M{"user_id": userID})
}

// GetUpcoming returns pending reminders due inside the window.
func (r *RemindersRepo) GetUpcoming(ctx context.Context, userID string, until time.Time) ([]*model.Reminder, error) {
	return r.findReminders(ctx, bson.M{
		"user_id": userID,
		"status":  model.ReminderPending,
		"due_at":  bson.M{"$lte": until},
	})
}

func (r *RemindersRepo) findReminders(ctx context.Context, filter bson.M) ([]*model.Reminder, error) {
	timer := utils.TrackDBOperation("find", "reminders")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "due_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "reminder_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []*model.Reminder
	if err = cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *RemindersRepo) UpdateReminder(ctx context.Context, reminderID, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "reminders")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()
	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": reminderID, "user_id": userID},
		bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "reminder_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) DeleteReminder(ctx context.Context, reminderID, userID string) error {
	timer := utils.TrackDBOperation("delete", "reminders")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": reminderID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "reminder_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
