package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"pilotta/game"
)

const noParent = -1

// node is an arena entry. parent and children index into tree.nodes.
type node struct {
	parent   int
	card     game.Card // move leading into this node
	mover    game.Team // team that played card
	children []int
	untried  []game.Card
	visits   int
	total    float64 // rewards from mover's perspective
}

// tree is one determinization's search tree, stored flat.
type tree struct {
	nodes []node
}

func newTree(root state) *tree {
	return &tree{nodes: []node{{
		parent:  noParent,
		mover:   game.NoTeam,
		untried: root.legalMoves(),
	}}}
}

func (t *tree) root() *node {
	return &t.nodes[0]
}

// selectThenExpand descends by UCB1 from the root until it finds a node with
// untried moves, expands one of them at random, and returns the new node's
// index with the state it represents.
func (t *tree) selectThenExpand(s state, exploration float64, rng *rand.Rand) (int, state) {
	current := 0
	for len(t.nodes[current].untried) == 0 && len(t.nodes[current].children) > 0 {
		current = t.pickChild(current, exploration)
		s = s.play(t.nodes[current].card)
	}

	n := &t.nodes[current]
	if len(n.untried) == 0 { // Terminal node
		return current, s
	}
	i := rng.Intn(len(n.untried))
	card := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	mover := s.turn.Team()
	s = s.play(card)
	t.nodes = append(t.nodes, node{
		parent:  current,
		card:    card,
		mover:   mover,
		untried: s.legalMoves(),
	})
	child := len(t.nodes) - 1
	t.nodes[current].children = append(t.nodes[current].children, child)
	return child, s
}

func (t *tree) pickChild(parent int, exploration float64) int {
	p := t.nodes[parent]
	if p.visits == 0 {
		panic("node has children but no visits")
	}
	policy := newUCT(exploration, float64(p.visits))

	best := -1
	bestScore := math.Inf(-1)
	for _, c := range p.children {
		child := t.nodes[c]
		if child.visits == 0 {
			return c
		}
		if score := policy.evaluate(child.total, float64(child.visits)); score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// backup adds a team A reward to every node from leaf to root.
func (t *tree) backup(leaf int, rewardA float64) {
	for i := leaf; i != noParent; i = t.nodes[i].parent {
		n := &t.nodes[i]
		n.visits++
		if n.mover == game.TeamB {
			n.total += 1 - rewardA
		} else {
			n.total += rewardA
		}
	}
}

// rootStats returns the root children's visits and totals indexed by card.
func (t *tree) rootStats() (visits [game.DeckSize]int, totals [game.DeckSize]float64) {
	for _, c := range t.root().children {
		child := t.nodes[c]
		visits[child.card.Index()] += child.visits
		totals[child.card.Index()] += child.total
	}
	return visits, totals
}
