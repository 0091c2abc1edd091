//go:generate go run go.uber.org/mock/mockgen -source=archive.go -destination=../mocks/mock_archive.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"

	"edu-chat/domain"
)

// ArchivedMessage is the durable projection of one message, enriched
// with the detected language. The in-memory store stays authoritative
// for delivery status; the archive never feeds back into the engine.
type ArchivedMessage struct {
	ID       int64
	Key      domain.ConversationKey
	SenderID string
	Text     string
	Lang     string
	At       time.Time
}

type IMessageArchive interface {
	Store(msg ArchivedMessage) error
	History(key domain.ConversationKey, cursor *string) ([]ArchivedMessage, *string, error)
	Search(ctx context.Context, terms string, limit int) ([]ArchivedMessage, error)
}

type MessageArchive struct {
	db     *badger.DB
	writer *bluge.Writer
	log    *slog.Logger
	limit  *int
}

func NewMessageArchive(db *badger.DB, writer *bluge.Writer, log *slog.Logger, limit *int) *MessageArchive {
	return &MessageArchive{db: db, writer: writer, log: log, limit: limit}
}

// Store persists the message in BadgerDB and indexes its text in Bluge.
// The key is formatted as "msg:{conversation}:{timestamp_padded}:{id}"
// so that a prefix scan returns a conversation in chronological order,
// with the message id as collision disconnector.
func (a *MessageArchive) Store(msg ArchivedMessage) error {
	if msg.Lang == "" {
		info := whatlanggo.Detect(msg.Text)
		msg.Lang = info.Lang.Iso6391()
	}

	key := archiveKey(msg)
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), payload)
	})
	if err != nil {
		return err
	}

	doc := bluge.NewDocument(key).
		AddField(bluge.NewTextField("text", msg.Text).StoreValue()).
		AddField(bluge.NewKeywordField("conversation", string(msg.Key))).
		AddField(bluge.NewKeywordField("sender", msg.SenderID)).
		AddField(bluge.NewKeywordField("lang", msg.Lang))
	return a.writer.Update(doc.ID(), doc)
}

// History pages through a conversation, newest first. Thanks to the
// padded timestamp in the key, the reverse prefix scan needs no sort.
// The returned cursor resumes the scan on the next call; nil input
// starts from the newest entry.
func (a *MessageArchive) History(key domain.ConversationKey, cursor *string) ([]ArchivedMessage, *string, error) {
	var messages []ArchivedMessage
	var lastKey string

	err := a.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", key)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Position past the newest possible timestamp, then walk back
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}
		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if a.limit != nil && len(messages) == *a.limit {
				a.log.Debug(fmt.Sprintf("History page limit of %d reached", *a.limit))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(value []byte) error {
				var msg ArchivedMessage
				if err := json.Unmarshal(value, &msg); err != nil {
					return err
				}
				messages = append(messages, msg)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return messages, &lastKey, nil
}

// Search runs a full-text match over every archived message and loads
// the backing records for the top hits.
func (a *MessageArchive) Search(ctx context.Context, terms string, limit int) ([]ArchivedMessage, error) {
	reader, err := a.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewMatchQuery(terms).SetField("text")
	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var out []ArchivedMessage
	match, err := iterator.Next()
	for err == nil && match != nil {
		var storedKey string
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				storedKey = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		msg, getErr := a.get(storedKey)
		if getErr != nil {
			return nil, getErr
		}
		out = append(out, msg)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *MessageArchive) get(key string) (ArchivedMessage, error) {
	var msg ArchivedMessage
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &msg)
		})
	})
	return msg, err
}

func archiveKey(msg ArchivedMessage) string {
	return fmt.Sprintf("msg:%s:%019d:%d", msg.Key, msg.At.UnixNano(), msg.ID)
}
