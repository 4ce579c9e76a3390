package catalogRepo

import (
	"errors"
	"fmt"
	"time"

	"amberhall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// contactDocID pins the contact record to a single well-known document.
const contactDocID = "venue-contact"

// MongoContactRepo implements ContactRepository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a new ContactRepository backed by MongoDB.
func NewMongoContactRepo(client *mongo.Client, dbName string) ContactRepository {
	return &MongoContactRepo{coll: client.Database(dbName).Collection("contact")}
}

func (r *MongoContactRepo) Get() (*models.Contact, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var contact models.Contact
	if err := r.coll.FindOne(ctx, bson.M{"id": contactDocID}).Decode(&contact); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch contact record: %w", err)
	}
	return &contact, nil
}

func (r *MongoContactRepo) Upsert(contact *models.Contact) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	contact.ID = contactDocID
	contact.UpdatedAt = time.Now()

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": contactDocID}, bson.M{"$set": contact}, opts); err != nil {
		return fmt.Errorf("failed to upsert contact record: %w", err)
	}
	return nil
}
