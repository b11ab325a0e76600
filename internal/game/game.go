// Package game provides the handle through which a front end plays a game:
// it lists legal moves, plays and takes back moves, reports the game state
// and asks the search for a move.
package game

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/search"
)

// MoveResult describes the position after an accepted move.
type MoveResult struct {
	Move    chess.Move
	InCheck bool // the side now to move is in check
	State   chess.GameState
}

// Handle is a game in progress. It is not safe for concurrent use.
type Handle struct {
	pos      chess.Position
	history  []chess.Move
	cfg      *config.Config
	searcher *search.Searcher
}

// NewGame starts a game from a FEN record, or from the initial position when
// record is empty. A nil cfg selects the default configuration.
func NewGame(record string, cfg *config.Config) (*Handle, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	pos := engine.NewInitialPosition()
	if record != "" {
		var err error
		if pos, err = engine.NewPositionFromFEN(record); err != nil {
			return nil, err
		}
	}
	return &Handle{pos: pos, cfg: cfg}, nil
}

// Position returns a copy of the current position.
func (h *Handle) Position() chess.Position {
	return h.pos
}

// CurrentRecord returns the current position as a FEN record.
func (h *Handle) CurrentRecord() string {
	return engine.PositionToFEN(&h.pos)
}

// LegalMoves returns the legal moves of the piece on sq, with one move per
// promotion piece. It is empty for an empty square, a piece of the side not
// to move or a square off the board.
func (h *Handle) LegalMoves(sq chess.Square) []chess.Move {
	if !sq.Valid() {
		return nil
	}
	piece := h.pos.Board[sq]
	if piece == chess.Empty || piece.Colour() != h.pos.ToMove {
		return nil
	}
	return engine.ExpandPromotions(engine.LegalMovesFrom(&h.pos, sq))
}

// AllLegalMoves returns every legal move of the side to move.
func (h *Handle) AllLegalMoves() []chess.Move {
	return engine.ExpandPromotions(engine.GenerateMoves(&h.pos, h.pos.ToMove))
}

// MakeMove plays m. promotion chooses the promotion piece; when neither it
// nor m names one, a promoting pawn becomes a queen. A rejected move leaves
// the game unchanged.
func (h *Handle) MakeMove(m chess.Move, promotion chess.Kind) (MoveResult, error) {
	if h.IsGameOver() {
		return MoveResult{}, errors.Wrapf(errors.ErrGameOver, "move %s", m)
	}
	if promotion == chess.NoKind && m.Promotion == chess.NoKind && reachesLastRank(m) {
		promotion = chess.Queen
	}

	next, done, err := engine.ApplyMove(h.pos, m, promotion)
	if err != nil {
		return MoveResult{}, err
	}
	h.pos = next
	h.history = append(h.history, done)

	return MoveResult{
		Move:    done,
		InCheck: h.InCheck(),
		State:   h.State(),
	}, nil
}

// MakeMoveText plays a move given in long algebraic notation, e.g. "e2e4"
// or "e7e8n". A promotion without a piece letter promotes to a queen.
func (h *Handle) MakeMoveText(text string) (MoveResult, error) {
	if h.IsGameOver() {
		return MoveResult{}, errors.Wrapf(errors.ErrGameOver, "move %s", text)
	}
	m, err := engine.ParseMove(&h.pos, text)
	if errors.Is(err, errors.ErrInvalidPromotion) && len(text) == 4 {
		m, err = engine.ParseMove(&h.pos, text+"q")
	}
	if err != nil {
		return MoveResult{}, err
	}
	return h.MakeMove(m, chess.NoKind)
}

// reachesLastRank reports whether m takes a pawn to its promotion rank.
func reachesLastRank(m chess.Move) bool {
	if m.Piece.Kind() != chess.Pawn || !m.To.Valid() {
		return false
	}
	if m.Piece.Colour() == chess.White {
		return m.To.Rank() == 8
	}
	return m.To.Rank() == 1
}

// Undo takes back the last move and returns it.
func (h *Handle) Undo() (chess.Move, error) {
	if len(h.history) == 0 {
		return chess.Move{}, errors.ErrNothingToUndo
	}
	last := h.history[len(h.history)-1]
	h.history = h.history[:len(h.history)-1]
	h.pos = engine.Unapply(h.pos, last)
	return last, nil
}

// History returns the moves played so far, oldest first.
func (h *Handle) History() []chess.Move {
	out := make([]chess.Move, len(h.history))
	copy(out, h.history)
	return out
}

// InCheck reports whether the side to move is in check.
func (h *Handle) InCheck() bool {
	return engine.IsInCheck(&h.pos.Board, h.pos.ToMove)
}

// State classifies the current position for the side to move.
func (h *Handle) State() chess.GameState {
	return engine.Classify(&h.pos)
}

// IsGameOver reports whether the game has ended by mate, stalemate or a draw.
func (h *Handle) IsGameOver() bool {
	return h.State().IsTerminal()
}

// BestMove searches the current position within the configured limits.
// The searcher and its table are kept for later calls.
func (h *Handle) BestMove(ctx context.Context) (search.Result, error) {
	if h.IsGameOver() {
		return search.Result{}, errors.Wrapf(errors.ErrGameOver, "position %s", h.CurrentRecord())
	}
	if h.searcher == nil {
		h.searcher = search.NewSearcher(h.cfg)
	}
	return h.searcher.Search(ctx, h.pos)
}
