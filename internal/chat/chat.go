package chat

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

const Greeting = "Hey there, gamer! I'm Akira, your AI gaming companion. How can I boost your experience today?"

// DefaultResponses is the fixed pool bot replies are drawn from.
var DefaultResponses = []string{
	"Your device is running at optimal performance! Current FPS: 120, Temperature: 42°C",
	"Pro tip: Enable battery saver mode for extended gaming sessions!",
	"I've analyzed your gaming patterns. You seem to enjoy competitive games. Want me to optimize settings for low latency?",
	"Fun fact: The first video game ever created was 'Tennis for Two' in 1958!",
	"Your boost history shows a 40% improvement in average FPS. Keep it up, champion!",
}

type Message struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessage(text string, isBot bool, at time.Time) Message {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return Message{ID: id, Text: text, IsBot: isBot, Timestamp: at}
}

type Responder struct {
	pool []string
	rng  *rand.Rand
}

func NewResponder(pool []string, rng *rand.Rand) *Responder {
	if len(pool) == 0 {
		pool = DefaultResponses
	}
	return &Responder{pool: append([]string(nil), pool...), rng: rng}
}

// Pick draws one response uniformly at random.
func (r *Responder) Pick() string {
	return r.pool[r.rng.IntN(len(r.pool))]
}

// Conversation is an append-only message log with a typing indicator. Every
// submission owes exactly one bot reply; typing stays on while any is owed.
type Conversation struct {
	messages    []Message
	maxMessages int
	nextID      uint64
	outstanding map[uint64]struct{}
	now         func() time.Time
}

func NewConversation(maxMessages int) *Conversation {
	c := &Conversation{maxMessages: maxMessages, outstanding: map[uint64]struct{}{}, now: time.Now}
	c.append(newMessage(Greeting, true, c.now()))
	return c
}

func (c *Conversation) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

func (c *Conversation) Typing() bool {
	return len(c.outstanding) > 0
}

// Pending reports how many submissions are still waiting for a reply.
func (c *Conversation) Pending() int {
	return len(c.outstanding)
}

// Submit appends a user message and marks the bot as typing. Blank input is
// ignored. The returned id must be passed to Reply.
func (c *Conversation) Submit(text string) (Message, uint64, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, 0, false
	}
	msg := newMessage(text, false, c.now())
	c.append(msg)
	c.nextID++
	c.outstanding[c.nextID] = struct{}{}
	return msg, c.nextID, true
}

// Reply appends the bot answer owed to the submission with the given id. Each
// id is answered at most once.
func (c *Conversation) Reply(pending uint64, text string) (Message, bool) {
	if _, ok := c.outstanding[pending]; !ok {
		return Message{}, false
	}
	delete(c.outstanding, pending)
	msg := newMessage(text, true, c.now())
	c.append(msg)
	return msg, true
}

func (c *Conversation) append(msg Message) {
	c.messages = append(c.messages, msg)
	if c.maxMessages > 0 && len(c.messages) > c.maxMessages {
		c.messages = c.messages[len(c.messages)-c.maxMessages:]
	}
}
