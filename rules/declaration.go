package rules

import (
	"sort"

	"pilotta/game"
)

// Declaration point values.
const (
	Sequence3Points = 20
	Sequence4Points = 50
	Sequence5Points = 100
	BelotePoints    = 20
)

// fourOfAKindPoints maps declarable ranks to their carre value. Sevens and
// eights are not declarable.
var fourOfAKindPoints = map[game.Rank]int{
	game.Jack:  200,
	game.Nine:  150,
	game.Ace:   100,
	game.Ten:   100,
	game.King:  100,
	game.Queen: 100,
}

// FindSequences returns one declaration per maximal run of three or more
// consecutive natural ranks in a suit. Runs of five or more score as a
// five-card sequence and are not split.
func FindSequences(hand game.Hand, seat game.Seat) []game.Declaration {
	var decls []game.Declaration
	for _, suit := range game.Suits {
		cards := hand.OfSuit(suit).Sorted()
		start := 0
		for i := 1; i <= len(cards); i++ {
			if i < len(cards) && cards[i].Rank == cards[i-1].Rank+1 {
				continue
			}
			if run := cards[start:i]; len(run) >= 3 {
				decls = append(decls, sequence(run, seat))
			}
			start = i
		}
	}
	return decls
}

func sequence(run []game.Card, seat game.Seat) game.Declaration {
	d := game.Declaration{Cards: append([]game.Card(nil), run...), Seat: seat}
	switch len(run) {
	case 3:
		d.Kind, d.Points = game.Sequence3, Sequence3Points
	case 4:
		d.Kind, d.Points = game.Sequence4, Sequence4Points
	default:
		d.Kind, d.Points = game.Sequence5, Sequence5Points
	}
	return d
}

// FindFourOfAKind returns a declaration for every declarable rank held in
// all four suits.
func FindFourOfAKind(hand game.Hand, seat game.Seat) []game.Declaration {
	byRank := make(map[game.Rank][]game.Card)
	for _, c := range hand {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}

	var decls []game.Declaration
	for _, rank := range game.Ranks {
		cards := byRank[rank]
		points, ok := fourOfAKindPoints[rank]
		if len(cards) < game.NumSuits || !ok {
			continue
		}
		sort.Slice(cards, func(i, j int) bool { return cards[i].Suit < cards[j].Suit })
		decls = append(decls, game.Declaration{
			Kind:   game.FourOfAKind,
			Cards:  cards,
			Points: points,
			Seat:   seat,
		})
	}
	return decls
}

// FindDeclarations returns every sequence and four-of-a-kind in hand.
// Belote is tracked separately because it only scores once played.
func FindDeclarations(hand game.Hand, seat game.Seat) []game.Declaration {
	return append(FindFourOfAKind(hand, seat), FindSequences(hand, seat)...)
}

// CheckBelote reports whether hand holds both King and Queen of trump.
func CheckBelote(hand game.Hand, trump game.Suit) bool {
	return hand.Contains(game.NewCard(trump, game.King)) && hand.Contains(game.NewCard(trump, game.Queen))
}

// CompareDeclarations returns game.Beats if a outranks b, game.Loses if b
// outranks a and game.NoContest on a true tie. A four-of-a-kind outranks any
// sequence; carres compare by points; sequences compare by length, then
// highest card, then trump membership.
func CompareDeclarations(a, b game.Declaration, trump game.Suit) int {
	aCarre, bCarre := a.Kind == game.FourOfAKind, b.Kind == game.FourOfAKind
	switch {
	case aCarre && !bCarre:
		return game.Beats
	case !aCarre && bCarre:
		return game.Loses
	case aCarre && bCarre:
		return compareInts(a.Points, b.Points)
	}

	if c := compareInts(a.Length(), b.Length()); c != game.NoContest {
		return c
	}
	if c := compareInts(int(a.High().Rank), int(b.High().Rank)); c != game.NoContest {
		return c
	}
	aTrump, bTrump := a.High().Suit == trump, b.High().Suit == trump
	switch {
	case aTrump && !bTrump:
		return game.Beats
	case !aTrump && bTrump:
		return game.Loses
	default:
		return game.NoContest
	}
}

func compareInts(a, b int) int {
	switch {
	case a > b:
		return game.Beats
	case a < b:
		return game.Loses
	default:
		return game.NoContest
	}
}

// BestDeclaration returns the highest-ranking declaration of decls.
func BestDeclaration(decls []game.Declaration, trump game.Suit) (game.Declaration, bool) {
	if len(decls) == 0 {
		return game.Declaration{}, false
	}
	best := decls[0]
	for _, d := range decls[1:] {
		if CompareDeclarations(d, best, trump) == game.Beats {
			best = d
		}
	}
	return best, true
}

// DeclarationWinner returns the only team allowed to show and bank its
// declarations: the team holding the strictly higher best declaration.
// It returns false when neither team holds one or the best ones tie.
func DeclarationWinner(bySeat [game.NumSeats][]game.Declaration, trump game.Suit) (game.Team, bool) {
	var best [game.NumTeams]game.Declaration
	var has [game.NumTeams]bool
	for _, team := range []game.Team{game.TeamA, game.TeamB} {
		var all []game.Declaration
		for _, seat := range team.Seats() {
			all = append(all, bySeat[seat]...)
		}
		best[team], has[team] = BestDeclaration(all, trump)
	}

	switch {
	case has[game.TeamA] && !has[game.TeamB]:
		return game.TeamA, true
	case !has[game.TeamA] && has[game.TeamB]:
		return game.TeamB, true
	case !has[game.TeamA] && !has[game.TeamB]:
		return game.NoTeam, false
	}

	switch CompareDeclarations(best[game.TeamA], best[game.TeamB], trump) {
	case game.Beats:
		return game.TeamA, true
	case game.Loses:
		return game.TeamB, true
	default:
		return game.NoTeam, false
	}
}

// DeclarationPoints sums the points of decls.
func DeclarationPoints(decls []game.Declaration) int {
	total := 0
	for _, d := range decls {
		total += d.Points
	}
	return total
}
