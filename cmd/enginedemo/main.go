// Command enginedemo runs the search core against a single position and
// prints its progress, the way a UCI engine would report "info" lines,
// without implementing the UCI text protocol itself.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"chess-engine/board"
	"chess-engine/search"
	"chess-engine/tt"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 8, "Maximum search depth")
	movetimeMS := flag.Int("movetime", 0, "Time budget in milliseconds (0 = depth-limited only)")
	ttMB := flag.Int("tt", 64, "Transposition table size in MB")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	table := tt.New(*ttMB)
	opts := search.DefaultOptions()
	opts.MaxDepth = *depth
	ctx := search.NewContext(table, opts)
	if *movetimeMS > 0 {
		ctx.Deadline = time.Now().Add(time.Duration(*movetimeMS) * time.Millisecond)
	}
	ctx.Reporter = func(info search.Info) {
		fmt.Printf("depth %d  score %d  nodes %d  nps %.0f  tthits %d  pv %s\n",
			info.Depth, info.Score, info.Nodes, nps(info), info.TTHits, pvString(info.PV))
	}

	best, score := ctx.Search(pos, nil)
	fmt.Printf("bestmove %s  score %d\n", best.String(), score)
}

func nps(info search.Info) float64 {
	secs := info.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(info.Nodes) / secs
}

func pvString(pv []board.Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
