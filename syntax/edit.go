package syntax

import (
	"fmt"
	"strings"

	"github.com/jomini-tools/jominicore/text"
)

// defaultEditIndent mirrors edit/edits.py's CstEditSession.default_indent.
const defaultEditIndent = 4

// trimmedNodeRange returns n's range from the trimmed start of its first
// descendant token to the trimmed end of its last, excluding whatever
// leading trivia the first token carries and whatever trailing trivia the
// last one carries. Unlike SyntaxNode.Range (which always spans the full,
// trivia-inclusive extent of a node), this is the range of n's own text.
func trimmedNodeRange(n *SyntaxNode) text.Range {
	toks := n.DescendantTokens()
	if len(toks) == 0 {
		return n.Range()
	}
	return text.NewRange(toks[0].Range().Start(), toks[len(toks)-1].Range().End())
}

// RenameTopLevelKey returns a new document text with the first top-level
// key-value statement whose key scalar equals oldKey renamed to newKey.
// Only the key token's own trimmed range is replaced; every other byte —
// every statement, every piece of trivia, the value itself — is left
// untouched. The caller is expected to re-parse the returned text (via
// Parse) to obtain a fresh Result, the same "re-parse a fragment instead
// of hand-building nodes" idiom
// original_source/.../edit/edits.py's CstEditSession uses for its own
// value/entry mutations.
func RenameTopLevelKey(result *Result, oldKey, newKey string) (string, error) {
	stmtNodes, sf, err := topLevelStatements(result)
	if err != nil {
		return "", err
	}

	for i, stmt := range sf.Statements {
		kv, ok := stmt.(*KeyValue)
		if !ok || kv.Key == nil || kv.Key.RawText != oldKey {
			continue
		}
		if i >= len(stmtNodes) {
			return "", fmt.Errorf("syntax: statement/syntax-node count mismatch")
		}
		keyNode := findChildNodeOfKind(stmtNodes[i], Scalar)
		if keyNode == nil {
			return "", fmt.Errorf("syntax: key-value statement has no key scalar")
		}
		r := trimmedNodeRange(keyNode)
		start, end := int(r.Start()), int(r.End())
		return result.SourceText[:start] + newKey + result.SourceText[end:], nil
	}
	return "", fmt.Errorf("syntax: top-level key %q not found", oldKey)
}

// InsertField returns a new document text with a new field statement
// appended to the end of the first top-level object-like block found
// under objectKey. fieldRaw is a single "key OP value"-shaped fragment;
// it is spliced in with an indentation prefix inferred from the block's
// existing fields (falling back to a default indent when none can be
// inferred), mirroring edit/edits.py's
// insert_entry_end_of_block/_infer_prefix_from_trivia. The caller is
// expected to re-parse the returned text to obtain a fresh Result.
func InsertField(result *Result, objectKey, fieldRaw string) (string, error) {
	stmtNodes, sf, err := topLevelStatements(result)
	if err != nil {
		return "", err
	}

	for i, stmt := range sf.Statements {
		kv, ok := stmt.(*KeyValue)
		if !ok || kv.Key == nil || kv.Key.RawText != objectKey {
			continue
		}
		block, ok := kv.Value.(*Block)
		if !ok || !block.IsObjectLike() {
			continue
		}
		if i >= len(stmtNodes) {
			return "", fmt.Errorf("syntax: statement/syntax-node count mismatch")
		}
		blockNode := findChildNodeOfKind(stmtNodes[i], Block)
		if blockNode == nil {
			return "", fmt.Errorf("syntax: object-valued key-value has no block node")
		}
		return insertFieldIntoBlock(result.SourceText, blockNode, fieldRaw)
	}
	return "", fmt.Errorf("syntax: top-level object-like block %q not found", objectKey)
}

// topLevelStatements returns the red statement nodes and the lowered
// source file in parallel, index-aligned: both walk the same top-level
// StatementList in the same source order, so stmtNodes[i] is always the
// red counterpart of sf.Statements[i].
func topLevelStatements(result *Result) ([]*SyntaxNode, *SourceFile, error) {
	root := result.SyntaxRoot()
	sourceFileNode := findChildNodeOfKind(root, SourceFile)
	if sourceFileNode == nil {
		return nil, nil, fmt.Errorf("syntax: parse tree has no source file node")
	}
	stmtList := findChildNodeOfKind(sourceFileNode, StatementList)
	if stmtList == nil {
		return nil, nil, fmt.Errorf("syntax: source file has no statement list")
	}
	return stmtList.ChildNodes(), result.AstRoot(), nil
}

// insertFieldIntoBlock splices prefix+fieldRaw right after the block's
// last existing statement (or right after its opening brace, if empty),
// so the field inherits whatever trivia already separated the block's
// closing brace from its last statement rather than displacing it.
func insertFieldIntoBlock(sourceText string, blockNode *SyntaxNode, fieldRaw string) (string, error) {
	innerList := findChildNodeOfKind(blockNode, StatementList)
	if innerList == nil {
		return "", fmt.Errorf("syntax: block has no statement list")
	}

	var lbrace, rbrace *SyntaxToken
	for _, t := range blockNode.ChildTokens() {
		switch t.Kind() {
		case LBrace:
			lbrace = t
		case RBrace:
			rbrace = t
		}
	}
	if lbrace == nil || rbrace == nil {
		return "", fmt.Errorf("syntax: block is missing its braces")
	}

	stmts := innerList.ChildNodes()
	var prefix string
	var insertAt text.Size

	if len(stmts) == 0 {
		gap := text.Slice(sourceText, text.NewRange(lbrace.Range().End(), rbrace.Range().Start()))
		prefix = indentPrefixFromGap(gap)
		insertAt = lbrace.Range().End()
	} else {
		last := stmts[len(stmts)-1]
		lastRange := trimmedNodeRange(last)
		gapStart := lbrace.Range().End()
		if len(stmts) > 1 {
			gapStart = trimmedNodeRange(stmts[len(stmts)-2]).End()
		}
		gap := text.Slice(sourceText, text.NewRange(gapStart, lastRange.Start()))
		prefix = indentPrefixFromGap(gap)
		insertAt = lastRange.End()
	}

	fragment := prefix + strings.TrimSpace(fieldRaw)
	pos := int(insertAt)
	return sourceText[:pos] + fragment + sourceText[pos:], nil
}

// indentPrefixFromGap scans the raw trivia text separating two sibling
// statements (or a brace and its nearest statement) for its last newline,
// reusing everything from there on as the new field's indentation.
// Ported from edit/edits.py's _infer_prefix_from_trivia.
func indentPrefixFromGap(gap string) string {
	if idx := strings.LastIndex(gap, "\n"); idx >= 0 {
		return gap[idx:]
	}
	return "\n" + strings.Repeat(" ", defaultEditIndent)
}
