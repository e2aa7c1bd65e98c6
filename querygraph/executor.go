package querygraph

import "context"

// ExecutionState exposes already-completed node results to IfNode
// predicates and to callers composing their own predicates/transforms.
type ExecutionState struct {
	results map[NodeID][]RecordIdentifier
}

// Results returns the RecordIdentifiers produced by node id, or nil if
// it has not executed (or was skipped).
func (s *ExecutionState) Results(id NodeID) []RecordIdentifier {
	return s.results[id]
}

// NodeExecutor renders and runs a single ReadQueryNode or WriteQueryNode
// against a physical backend. Separating this from Graph keeps the
// graph itself backend-agnostic. This module contains no implementation
// of NodeExecutor over driver and sqlbuilder; the tests supply a fake.
type NodeExecutor interface {
	ExecuteRead(ctx context.Context, n ReadQueryNode) ([]RecordIdentifier, error)
	ExecuteWrite(ctx context.Context, n WriteQueryNode) ([]RecordIdentifier, error)
}

// Execute runs every node of g to completion against exec, honoring
// ExecutionOrder, Then/Else, and ParentIds edge semantics, and returns
// every node's result keyed by NodeID. A node behind an untaken If
// branch is skipped: it is absent from the returned map.
func Execute(ctx context.Context, g *Graph, exec NodeExecutor) (map[NodeID][]RecordIdentifier, error) {
	in := incomingEdges(g)
	state := &ExecutionState{results: make(map[NodeID][]RecordIdentifier)}
	ifTaken := make(map[NodeID]bool)
	skipped := make(map[NodeID]bool)
	running := make(map[NodeID]bool)

	var ensure func(id NodeID) error
	ensure = func(id NodeID) error {
		if _, done := state.results[id]; done {
			return nil
		}
		if skipped[id] || running[id] {
			return nil
		}
		running[id] = true
		defer func() { running[id] = false }()

		node := g.Node(id)

		for _, e := range in[id] {
			switch edge := e.Edge.(type) {
			case ThenEdge, ElseEdge:
				if err := ensure(e.From); err != nil {
					return err
				}
				if skipped[e.From] {
					skipped[id] = true
					return nil
				}
				taken, ok := ifTaken[e.From]
				if !ok {
					return NewGraphBuilderError("If node %d has no recorded branch result", e.From)
				}
				if taken != isThenEdge(edge) {
					skipped[id] = true
					return nil
				}
			case ExecutionOrderEdge:
				if err := ensure(e.From); err != nil {
					return err
				}
			case ParentIdsEdge:
				if err := ensure(e.From); err != nil {
					return err
				}
				if skipped[e.From] {
					skipped[id] = true
					return nil
				}
				rewritten, err := edge.Transform(node, state.results[e.From])
				if err != nil {
					return err
				}
				node = rewritten
				g.SetNode(id, rewritten)
			}
		}

		switch n := node.(type) {
		case ReadQueryNode:
			results, err := exec.ExecuteRead(ctx, n)
			if err != nil {
				return err
			}
			state.results[id] = results
		case WriteQueryNode:
			results, err := exec.ExecuteWrite(ctx, n)
			if err != nil {
				return err
			}
			state.results[id] = results
		case IfNode:
			ok, err := n.Predicate(state)
			if err != nil {
				return err
			}
			ifTaken[id] = ok
			state.results[id] = nil
		case EmptyNode:
			state.results[id] = nil
		}

		return nil
	}

	for id := 0; id < g.NodeCount(); id++ {
		if err := ensure(NodeID(id)); err != nil {
			return nil, err
		}
	}

	return state.results, nil
}

func isThenEdge(e Edge) bool {
	_, ok := e.(ThenEdge)
	return ok
}

func incomingEdges(g *Graph) map[NodeID][]edgeRecord {
	m := make(map[NodeID][]edgeRecord)
	for id := 0; id < g.NodeCount(); id++ {
		for _, e := range g.edges {
			if e.To == NodeID(id) {
				m[NodeID(id)] = append(m[NodeID(id)], e)
			}
		}
	}
	return m
}
