package syntax

import "testing"

func TestKindClassification(t *testing.T) {
	cases := []struct {
		k       Kind
		trivia  bool
		token   bool
		node    bool
	}{
		{Whitespace, true, true, false},
		{Newline, true, true, false},
		{Identifier, false, true, false},
		{Equal, false, true, false},
		{LBrace, false, true, false},
		{Root, false, false, true},
		{KeyValue, false, false, true},
	}
	for _, c := range cases {
		if got := c.k.IsTrivia(); got != c.trivia {
			t.Errorf("%v.IsTrivia() = %v, want %v", c.k, got, c.trivia)
		}
		if got := c.k.IsToken(); got != c.token {
			t.Errorf("%v.IsToken() = %v, want %v", c.k, got, c.token)
		}
		if got := c.k.IsNode(); got != c.node {
			t.Errorf("%v.IsNode() = %v, want %v", c.k, got, c.node)
		}
	}
}

func TestAssignmentOperatorsMembership(t *testing.T) {
	for _, k := range []Kind{Equal, EqualEqual, NotEqual, LessThanOrEqual, GreaterThanOrEqual, LessThan, GreaterThan, QuestionEqual} {
		if !AssignmentOperators.Contains(k) {
			t.Errorf("AssignmentOperators should contain %v", k)
		}
	}
	for _, k := range []Kind{Colon, Identifier, LBrace} {
		if AssignmentOperators.Contains(k) {
			t.Errorf("AssignmentOperators should not contain %v", k)
		}
	}
}
