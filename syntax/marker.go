package syntax

// Marker references an open (not yet completed) Start event in the
// parser's event list, returned by Parser.Start. Ported from
// original_source/jominipy/parser/marker.py's Marker.
type Marker struct {
	pos int // index into the parser's event list
}

// CompletedMarker references a Start event that has been completed
// (closed), allowing a later call to Precede it with an enclosing node.
// Ported from original_source/jominipy/parser/marker.py's CompletedMarker.
type CompletedMarker struct {
	startPos  int
	finishPos int
	kind      Kind
}

// Complete closes the node m opened, assigning it kind, and emits the
// matching Finish event. Returns a CompletedMarker so the caller can later
// wrap it with Precede.
func (p *Parser) Complete(m Marker, kind Kind) CompletedMarker {
	p.events[m.pos].StartKind = kind
	finishPos := len(p.events)
	p.events = append(p.events, Event{Kind: EventFinish})
	return CompletedMarker{startPos: m.pos, finishPos: finishPos, kind: kind}
}

// Abandon discards m's node entirely: if no events were recorded between
// opening and abandoning it, its Start event is simply dropped; otherwise
// it is tombstoned in place so replay skips it while everything recorded
// after it keeps its position (ProcessEvents still follows a forward-parent
// chain through a tombstoned Start, but never opens that node itself).
func (p *Parser) Abandon(m Marker) {
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
		return
	}
	p.events[m.pos].Tombstoned = true
}

// Precede opens a new node that will become the parent of the subtree
// rooted at cm, without needing to rewrite any event recorded since cm was
// completed: the new Start event records its relative distance back to
// cm's own Start event via ForwardParent, which ProcessEvents resolves at
// replay time. Ported from marker.py's Marker.precede, including the
// "keep the smallest distance if this start already had a forward parent"
// rule, which lets a chain of precede calls stack correctly.
func (p *Parser) Precede(cm CompletedMarker) Marker {
	newPos := len(p.events)
	p.events = append(p.events, Event{Kind: EventStart})
	distance := newPos - cm.startPos
	existing := p.events[cm.startPos].ForwardParent
	if existing == 0 || distance < existing {
		p.events[cm.startPos].ForwardParent = distance
	}
	return Marker{pos: newPos}
}

// ChangeKind rewrites the kind of an already-completed node, used when a
// speculatively-parsed construct turns out to need reclassification
// (e.g. a bare block statement discovered to be part of a tagged value).
func (cm *CompletedMarker) ChangeKind(p *Parser, kind Kind) {
	p.events[cm.startPos].StartKind = kind
	cm.kind = kind
}

// UndoCompletion reopens cm for more children, provided no other event has
// been recorded since it was completed: it removes the trailing Finish
// event and returns a fresh Marker pointing at the same Start event, which
// a later call to Complete can close again (with the same or a different
// kind), unlike ChangeKind, which only relabels an already-closed node
// without letting the grammar append anything further inside it. Ported
// from original_source/jominipy/parser/marker.py's
// CompletedMarker.undo_completion. Panics if cm is not the most recently
// completed node, mirroring the reference's
// RuntimeError("Can only undo the most recent completion").
func (p *Parser) UndoCompletion(cm CompletedMarker) Marker {
	if cm.finishPos != len(p.events)-1 {
		panic("syntax: UndoCompletion called on a non-latest completion")
	}
	p.events = p.events[:cm.finishPos]
	return Marker{pos: cm.startPos}
}

// Kind returns the kind the completed node was closed with.
func (cm CompletedMarker) Kind() Kind {
	return cm.kind
}
