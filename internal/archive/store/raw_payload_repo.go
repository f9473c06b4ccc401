/*
 * Copyright (c) 2025, CreditDesk Pvt Ltd. (https://www.creditdesk.in).
 *
 * CreditDesk Pvt Ltd. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errors2 "github.com/creditdesk/bureau-data-service/internal/system/errors"
	"github.com/creditdesk/bureau-data-service/internal/system/utils"
)

// RawPayloadRepository archives the untouched vendor payloads in MongoDB so
// failed parses can be replayed after a transformer fix. The archive is
// advisory: a write failure never fails the parse that produced it.
type RawPayloadRepository struct {
	collection *mongo.Collection
}

// NewRawPayloadRepository creates a new repository instance
func NewRawPayloadRepository(db *mongo.Database, collectionName string) *RawPayloadRepository {
	return &RawPayloadRepository{
		collection: db.Collection(collectionName),
	}
}

// ArchivePayload stores one raw vendor payload with its parse outcome.
func (repo *RawPayloadRepository) ArchivePayload(reportID, bureauName string, success bool, payload interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := bson.M{
		"report_id":   reportID,
		"bureau_name": bureauName,
		"success":     success,
		"payload":     payload,
		"archived_at": utils.Now().UTC(),
	}
	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return errors2.NewServerError(errors2.ErrWhileArchivingPayload, errors.Wrap(err, "insert raw payload document"))
	}
	return nil
}

// GetPayloadsByBureau returns archived payload documents for one bureau,
// newest first, capped at limit.
func (repo *RawPayloadRepository) GetPayloadsByBureau(bureauName string, limit int64) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "archived_at", Value: -1}}).SetLimit(limit)
	cursor, err := repo.collection.Find(ctx, bson.M{"bureau_name": bureauName}, opts)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileArchivingPayload, errors.Wrap(err, "find raw payload documents"))
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors2.NewServerError(errors2.ErrWhileArchivingPayload, errors.Wrap(err, "decode raw payload documents"))
	}
	return docs, nil
}
