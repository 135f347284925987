package syntax

import "testing"

func newTestParser(src string) *Parser {
	lexer := NewLexer(src)
	buffered := NewBufferedLexer(lexer)
	source := NewTokenSource(buffered)
	return NewParser(source, DefaultOptions(), src)
}

func TestUndoCompletionReopensLatestNode(t *testing.T) {
	p := newTestParser("foo bar")
	m := p.Start()
	p.BumpAny() // foo
	cm := p.Complete(m, Scalar)

	reopened := p.UndoCompletion(cm)
	p.BumpAny() // bar
	cm2 := p.Complete(reopened, Scalar)

	if cm2.Kind() != Scalar {
		t.Fatalf("expected reopened node to still close as Scalar, got %v", cm2.Kind())
	}
	events, _ := p.Finish()
	// Start, Token(foo), Token(bar), Finish: the intermediate Finish UndoCompletion
	// removed must not still be present in the replayed stream.
	if len(events) != 4 {
		t.Fatalf("expected 4 events (start, 2 tokens, finish), got %d: %#v", len(events), events)
	}
	if events[0].Kind != EventStart || events[3].Kind != EventFinish {
		t.Fatalf("unexpected event shape: %#v", events)
	}
}

func TestUndoCompletionPanicsOnNonLatestCompletion(t *testing.T) {
	p := newTestParser("foo bar")
	m1 := p.Start()
	p.BumpAny() // foo
	cm1 := p.Complete(m1, Scalar)

	m2 := p.Start()
	p.BumpAny() // bar
	p.Complete(m2, Scalar)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected UndoCompletion to panic when cm is not the latest completion")
		}
	}()
	p.UndoCompletion(cm1)
}
