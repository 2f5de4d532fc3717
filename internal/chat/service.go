package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"oilfield-dashboard-api/internal/storage"
)

// historyRecordKey names the durable record holding the chat transcript.
const historyRecordKey = "oilFieldChatHistory"

// ChatService is a transport shim: it keeps the persisted transcript and
// forwards each user message to the Responder. Responder failures become a
// bot apology in the transcript rather than a transport error.
type ChatService struct {
	Records   *storage.RecordStore
	Responder Responder

	mu       sync.Mutex
	messages []Message
}

func NewChatService(records *storage.RecordStore, responder Responder) *ChatService {
	return &ChatService{Records: records, Responder: responder}
}

// Load restores the transcript from the durable record. An absent or
// malformed record yields a fresh transcript seeded with the welcome message;
// Load fails only when the record store itself cannot be read.
func (cs *ChatService) Load() error {
	blob, err := cs.Records.Read(historyRecordKey)
	if err != nil {
		return fmt.Errorf("load chat history: %w", err)
	}

	var messages []Message
	if blob != nil {
		if err := json.Unmarshal(blob, &messages); err != nil {
			log.Printf("discarding malformed %s record: %v", historyRecordKey, err)
			messages = nil
		}
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.messages = messages
	if len(cs.messages) == 0 {
		cs.messages = append(cs.messages, botMessage(welcomeText))
	}
	return nil
}

// History returns a snapshot of the transcript.
func (cs *ChatService) History() []Message {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	out := make([]Message, len(cs.messages))
	copy(out, cs.messages)
	return out
}

func (cs *ChatService) QuickActions() []QuickAction {
	out := make([]QuickAction, len(quickActions))
	copy(out, quickActions)
	return out
}

// Send appends the user message, asks the Responder for a reply, and appends
// and returns the bot message. Both entries are persisted together.
func (cs *ChatService) Send(ctx context.Context, text string) (Message, error) {
	reply, err := cs.Responder.Reply(ctx, text)
	if err != nil {
		log.Printf("responder: %v", err)
		reply = errorText
	}

	user := Message{
		ID:        generateID(),
		Text:      text,
		Sender:    SenderUser,
		Timestamp: time.Now().UTC(),
		Avatar:    userAvatar,
	}
	bot := botMessage(reply)

	cs.mu.Lock()
	cs.messages = append(cs.messages, user, bot)
	err = cs.flushLocked()
	cs.mu.Unlock()

	if err != nil {
		return Message{}, err
	}
	return bot, nil
}

// Clear drops the transcript and reseeds it with the cleared notice.
func (cs *ChatService) Clear() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.messages = []Message{botMessage(clearedText)}
	return cs.flushLocked()
}

func (cs *ChatService) flushLocked() error {
	blob, err := json.Marshal(cs.messages)
	if err != nil {
		return fmt.Errorf("serialize chat history: %w", err)
	}
	return cs.Records.Write(historyRecordKey, blob)
}

func botMessage(text string) Message {
	return Message{
		ID:        generateID(),
		Text:      text,
		Sender:    SenderBot,
		Timestamp: time.Now().UTC(),
		Avatar:    botAvatar,
	}
}

func generateID() string {
	return uuid.NewString()
}
