package search

import (
	"context"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Score bounds. A side that is mated scores -MateScore plus the number of
// plies from the root, so shorter mates score further from zero.
const (
	MateScore = 100000
	Infinity  = MateScore + 1

	maxPly        = 256
	mateThreshold = MateScore - maxPly
)

// Move ordering keys.
const (
	hintScore    = 1 << 20
	captureScore = 1 << 16
)

// checkInterval is the node mask between clock and context checks.
const checkInterval = 1023

// IsMateScore reports whether score announces a forced mate.
func IsMateScore(score int) bool {
	return score >= mateThreshold || score <= -mateThreshold
}

// MateDistance returns the number of plies to mate for a mate score, negative
// when the side to move is being mated.
func MateDistance(score int) (int, bool) {
	switch {
	case score >= mateThreshold:
		return MateScore - score, true
	case score <= -mateThreshold:
		return -(MateScore + score), true
	}
	return 0, false
}

// AlphaBeta runs a fixed-depth negamax search with alpha-beta pruning and
// returns the score of pos for the side to move together with the best move.
// Each branch works on its own copy of the position. The move is the zero
// Move when the side to move has no legal moves.
func AlphaBeta(pos chess.Position, depth, alpha, beta int) (int, chess.Move) {
	return alphaBeta(pos, depth, 0, alpha, beta)
}

func alphaBeta(pos chess.Position, depth, ply, alpha, beta int) (int, chess.Move) {
	moves := engine.GenerateMoves(&pos, pos.ToMove)
	if score, done := terminalScore(&pos, moves, ply); done {
		return score, chess.Move{}
	}
	if depth <= 0 {
		return Evaluate(&pos), chess.Move{}
	}

	moves = engine.ExpandPromotions(moves)
	bestScore := -Infinity
	best := moves[0]
	for _, m := range moves {
		child := pos
		engine.MakeMove(&child, m)
		score, _ := alphaBeta(child, depth-1, ply+1, -beta, -alpha)
		score = -score
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore, best
}

// terminalScore scores positions where the game is over: mate, stalemate
// and drawn positions.
func terminalScore(pos *chess.Position, moves []chess.Move, ply int) (int, bool) {
	if len(moves) == 0 {
		if engine.IsInCheck(&pos.Board, pos.ToMove) {
			return -MateScore + ply, true
		}
		return 0, true
	}
	if engine.HasInsufficientMaterial(&pos.Board) || engine.IsFiftyMoveDraw(pos) {
		return 0, true
	}
	return 0, false
}

// Result is the outcome of a search.
type Result struct {
	Move    chess.Move
	Score   int
	Depth   int // deepest iteration the move comes from
	Nodes   uint64
	Elapsed time.Duration
}

// Searcher runs iterative deepening searches within the limits of a
// SearchConfig, sharing one transposition table across searches.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	cfg   *config.Config
	table *hashing.Table

	ctx      context.Context
	deadline time.Time
	nodes    uint64
	stopped  bool
}

// NewSearcher creates a searcher for the given configuration.
func NewSearcher(cfg *config.Config) *Searcher {
	return &Searcher{
		cfg:   cfg,
		table: hashing.NewTable(cfg.Search.TableSize),
	}
}

// Reset clears the transposition table.
func (s *Searcher) Reset() {
	s.table.Clear()
}

// Search looks for the best move in pos. It deepens one ply at a time up to
// the configured depth and stops early when the node limit, the move time or
// ctx runs out; the move from the deepest finished iteration is returned.
// Positions without legal moves yield ErrGameOver.
func (s *Searcher) Search(ctx context.Context, pos chess.Position) (Result, error) {
	start := time.Now()
	s.ctx = ctx
	s.nodes = 0
	s.stopped = false
	s.deadline = time.Time{}
	if mt := s.cfg.Search.MoveTime; mt > 0 {
		s.deadline = start.Add(mt)
	}

	root := engine.ExpandPromotions(engine.GenerateMoves(&pos, pos.ToMove))
	if len(root) == 0 {
		return Result{}, errors.Wrapf(errors.ErrGameOver, "%s to move in %s",
			pos.ToMove, engine.PositionToFEN(&pos))
	}

	result := Result{Move: root[0]}
	for depth := 1; depth <= s.cfg.Search.Depth; depth++ {
		if depth > 1 && ctx.Err() != nil {
			break
		}
		score, move, ok := s.searchRoot(&pos, root, depth, result.Move)
		if s.stopped && (depth > 1 || !ok) {
			break
		}
		result.Move = move
		result.Score = score
		result.Depth = depth

		s.cfg.Logf(2, "depth %d score %d nodes %d move %s", depth, score, s.nodes, move)
		if s.stopped || IsMateScore(score) {
			break
		}
	}

	result.Nodes = s.nodes
	result.Elapsed = time.Since(start)
	return result, nil
}

// searchRoot searches every root move with a full window. ok is false when
// the search was stopped before the first move finished.
func (s *Searcher) searchRoot(pos *chess.Position, root []chess.Move, depth int, hint chess.Move) (int, chess.Move, bool) {
	moves := orderMoves(root, hint)
	alpha, beta := -Infinity, Infinity
	bestScore := -Infinity
	var best chess.Move
	searched := 0

	for _, m := range moves {
		done := engine.MakeMove(pos, m)
		score := -s.negamax(pos, depth-1, 1, -beta, -alpha)
		engine.UnmakeMove(pos, done)
		if s.stopped {
			break
		}
		searched++
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if searched == 0 {
		return 0, chess.Move{}, false
	}
	if !s.stopped && beforeFiftyMoves(pos, depth) {
		s.table.Store(hashing.Entry{Key: hashing.Key(pos), Depth: depth, Score: bestScore, Bound: hashing.Exact, Move: best})
	}
	return bestScore, best, true
}

// negamax searches pos in place, undoing every move it plays.
func (s *Searcher) negamax(pos *chess.Position, depth, ply, alpha, beta int) int {
	s.nodes++
	if s.shouldStop() {
		s.stopped = true
		return 0
	}

	moves := engine.GenerateMoves(pos, pos.ToMove)
	if score, done := terminalScore(pos, moves, ply); done {
		return score
	}
	if depth <= 0 {
		return Evaluate(pos)
	}

	key := hashing.Key(pos)
	var hint chess.Move
	if e, ok := s.table.Probe(key); ok {
		hint = e.Move
		if e.Depth >= depth && beforeFiftyMoves(pos, e.Depth) {
			score := scoreFromTable(e.Score, ply)
			switch {
			case e.Bound == hashing.Exact:
				return score
			case e.Bound == hashing.Lower && score >= beta:
				return score
			case e.Bound == hashing.Upper && score <= alpha:
				return score
			}
		}
	}

	moves = orderMoves(engine.ExpandPromotions(moves), hint)
	origAlpha := alpha
	bestScore := -Infinity
	var best chess.Move
	for _, m := range moves {
		done := engine.MakeMove(pos, m)
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		engine.UnmakeMove(pos, done)
		if s.stopped {
			return 0
		}
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	bound := hashing.Exact
	switch {
	case bestScore <= origAlpha:
		bound = hashing.Upper
	case bestScore >= beta:
		bound = hashing.Lower
	}
	if beforeFiftyMoves(pos, depth) {
		s.table.Store(hashing.Entry{Key: key, Depth: depth, Score: scoreToTable(bestScore, ply), Bound: bound, Move: best})
	}
	return bestScore
}

// beforeFiftyMoves reports whether no line of depth plies from pos can reach
// the fifty-move limit. Table keys leave out the half-move clock, so scores
// are only stored and trusted when the clock cannot affect them.
func beforeFiftyMoves(pos *chess.Position, depth int) bool {
	return pos.HalfmoveClock+depth < engine.FiftyMoveLimit
}

// shouldStop checks the node limit on every node and the clock and context
// every checkInterval+1 nodes.
func (s *Searcher) shouldStop() bool {
	if s.stopped {
		return true
	}
	if limit := s.cfg.Search.NodeLimit; limit > 0 && s.nodes > limit {
		return true
	}
	if s.nodes&checkInterval != 0 {
		return false
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return true
	}
	return s.ctx.Err() != nil
}

// Mate scores are stored relative to the node so they stay valid when the
// same position is reached at another ply.
func scoreToTable(score, ply int) int {
	switch {
	case score >= mateThreshold:
		return score + ply
	case score <= -mateThreshold:
		return score - ply
	}
	return score
}

func scoreFromTable(score, ply int) int {
	switch {
	case score >= mateThreshold:
		return score - ply
	case score <= -mateThreshold:
		return score + ply
	}
	return score
}

type scoredMove struct {
	move  chess.Move
	score int
}

// orderMoves sorts moves so that the hint comes first, then captures by
// most valuable victim and least valuable attacker, then promotions.
// Equal keys keep generation order.
func orderMoves(moves []chess.Move, hint chess.Move) []chess.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, score: moveScore(m, hint)}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return b.score - a.score
	})
	ordered := make([]chess.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

func moveScore(m, hint chess.Move) int {
	if hint.From != hint.To && m.SameSquares(hint) {
		return hintScore
	}
	score := 0
	if m.IsCapture() {
		score += captureScore + 10*PieceValue(m.Captured.Kind()) - PieceValue(m.Piece.Kind())
	}
	if m.IsPromotion() {
		score += PieceValue(m.Promotion)
	}
	return score
}
