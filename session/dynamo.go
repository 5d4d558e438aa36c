package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type sessionItem struct {
	ID        string    `dynamodbav:"PK"`
	JudgeID   int       `dynamodbav:"JudgeID"`
	Data      string    `dynamodbav:"Data"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt"`
}

type DynamoStore struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoStore) Get(ctx context.Context, id string) (*Session, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal key for %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: GetItem for %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrSessionNotFound
	}

	var item sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		logging.Log.Errorf("SESSION: failed to unmarshal session item: %v", err)
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(item.Data), &sess); err != nil {
		logging.Log.Errorf("SESSION: corrupted session data for %s: %v", id, err)
		return nil, err
	}
	sess.ensureLedger()
	return &sess, nil
}

func (s *DynamoStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(&sessionItem{
		ID:        sess.ID,
		JudgeID:   sess.Judge.ID,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal session: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to save session %s: %v", sess.ID, err)
		return err
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to marshal delete key for %s: %v", id, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SESSION: failed to delete session %s: %v", id, err)
		return err
	}
	logging.Log.Infof("SESSION: deleted session %s", id)
	return nil
}
