package chat

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestSubmitThenReply(t *testing.T) {
	t.Parallel()

	responder := NewResponder(nil, rand.New(rand.NewPCG(1, 1)))
	conv := NewConversation(0)
	before := conv.Len()

	msg, pending, ok := conv.Submit("hello")
	if !ok {
		t.Fatalf("expected submit to succeed")
	}
	if msg.Text != "hello" || msg.IsBot {
		t.Fatalf("unexpected user message: %+v", msg)
	}
	if !conv.Typing() {
		t.Fatalf("expected typing indicator after submit")
	}

	reply, ok := conv.Reply(pending, responder.Pick())
	if !ok {
		t.Fatalf("expected reply to be accepted")
	}
	if !reply.IsBot || !slices.Contains(DefaultResponses, reply.Text) {
		t.Fatalf("reply not drawn from pool: %+v", reply)
	}
	if conv.Typing() {
		t.Fatalf("typing indicator should clear after reply")
	}
	if conv.Len() != before+2 {
		t.Fatalf("expected exactly two new messages, got %d", conv.Len()-before)
	}
	if _, ok := conv.Reply(pending, responder.Pick()); ok {
		t.Fatalf("second reply for the same submission accepted")
	}
}

func TestBlankSubmitIgnored(t *testing.T) {
	t.Parallel()

	conv := NewConversation(0)
	before := conv.Len()
	for _, input := range []string{"", "   ", "\t\n"} {
		if _, _, ok := conv.Submit(input); ok {
			t.Fatalf("blank input %q accepted", input)
		}
	}
	if conv.Len() != before || conv.Typing() {
		t.Fatalf("blank submits changed the conversation")
	}
}

func TestOverlappingSubmitsEachGetReply(t *testing.T) {
	t.Parallel()

	conv := NewConversation(0)
	before := conv.Len()
	_, first, _ := conv.Submit("one")
	_, second, _ := conv.Submit("two")
	if first == second {
		t.Fatalf("submissions share pending id %d", first)
	}
	if conv.Pending() != 2 {
		t.Fatalf("expected 2 pending replies, got %d", conv.Pending())
	}

	if _, ok := conv.Reply(first, DefaultResponses[0]); !ok {
		t.Fatalf("reply for first submission rejected")
	}
	if !conv.Typing() {
		t.Fatalf("typing cleared while a reply is still owed")
	}
	if _, ok := conv.Reply(second, DefaultResponses[1]); !ok {
		t.Fatalf("reply for second submission rejected")
	}
	if conv.Typing() {
		t.Fatalf("typing should clear once every reply arrived")
	}
	if _, ok := conv.Reply(first, DefaultResponses[2]); ok {
		t.Fatalf("duplicate reply accepted")
	}
	if conv.Len() != before+4 {
		t.Fatalf("expected 4 new messages, got %d", conv.Len()-before)
	}
}

func TestMessageIDsAreOrdered(t *testing.T) {
	t.Parallel()

	conv := NewConversation(0)
	for i := 0; i < 20; i++ {
		conv.Submit("ping")
	}
	msgs := conv.Messages()
	for i := 1; i < len(msgs); i++ {
		if msgs[i].ID == msgs[i-1].ID {
			t.Fatalf("duplicate message id at %d", i)
		}
		if msgs[i].ID.String() < msgs[i-1].ID.String() {
			t.Fatalf("message ids not time ordered at %d", i)
		}
	}
}

func TestMaxMessagesEvictsOldest(t *testing.T) {
	t.Parallel()

	conv := NewConversation(3)
	conv.Submit("a")
	conv.Submit("b")
	conv.Submit("c")
	msgs := conv.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "a" || msgs[2].Text != "c" {
		t.Fatalf("unexpected retained messages: %q %q", msgs[0].Text, msgs[2].Text)
	}
}

func TestPickCoversPool(t *testing.T) {
	t.Parallel()

	responder := NewResponder(nil, rand.New(rand.NewPCG(8, 3)))
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[responder.Pick()] = true
	}
	if len(seen) != len(DefaultResponses) {
		t.Fatalf("expected all %d responses, saw %d", len(DefaultResponses), len(seen))
	}
}
