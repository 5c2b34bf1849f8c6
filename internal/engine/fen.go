// Package engine provides chess move generation, legality checking and
// board manipulation on top of the chess package types.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// minFENFields is the number of fields a FEN string must carry; the two
// clock fields are optional.
const minFENFields = 4

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// uppercase for White, lowercase for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := SANPieceLetter(chess.ExtractPiece(colouredPiece))
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < minFENFields {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Field:    "fields",
			Input:    fen,
			Expected: fmt.Sprintf("at least %d fields", minFENFields),
			Got:      strconv.Itoa(len(parts)),
		}
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		err.Input = fen
		return nil, err
	}

	if err := parseSideToMove(board, parts[1]); err != nil {
		err.Input = fen
		return nil, err
	}

	parseCastlingRights(board, parts[2])
	parseEnPassant(board, parts[3])
	parseClocks(board, parts)

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) *errors.ParseError {
	rank := chess.LastRank
	file := chess.FirstFile

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			file = chess.FirstFile
			if rank < chess.FirstRank {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Got: "more than 8 ranks"}
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.LastFile+1 {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Got: fmt.Sprintf("rank %d longer than 8 squares", rank)}
			}
		default:
			piece := ConvertFENCharToPiece(byte(c))
			if piece == chess.Empty || c > unicode.MaxASCII {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Got: fmt.Sprintf("character %q", c)}
			}
			if file > chess.LastFile {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Got: fmt.Sprintf("rank %d longer than 8 squares", rank)}
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			board.Set(chess.NewCoordinates(file, rank), chess.MakeColouredPiece(colour, piece))
			file++
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) *errors.ParseError {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "active colour", Expected: "w or b", Got: field}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
// Unknown letters are ignored rather than rejected.
func parseCastlingRights(board *chess.Board, field string) {
	board.Castling = chess.CastlingRights{}
	if field == "-" {
		return
	}

	for _, c := range field {
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		}
	}
}

// parseEnPassant parses the en passant target square field.
// Anything other than a valid square means no target.
func parseEnPassant(board *chess.Board, field string) {
	board.ClearEnPassantTarget()
	if field == "-" {
		return
	}
	if sq, err := chess.ParseSquare(field); err == nil {
		board.SetEnPassantTarget(sq)
	}
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) {
	board.HalfmoveClock = 0
	board.MoveNumber = 1
	if len(parts) >= 5 {
		if n, err := strconv.ParseUint(parts[4], 10, 0); err == nil {
			board.HalfmoveClock = uint(n)
		}
	}
	if len(parts) >= 6 {
		if n, err := strconv.ParseUint(parts[5], 10, 0); err == nil && n > 0 {
			board.MoveNumber = uint(n)
		}
	}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			piece := board.Get(chess.NewCoordinates(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if !board.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	if board.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if board.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if board.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if board.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if sq, ok := board.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
