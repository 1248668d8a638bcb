// Command crs is a thin CLI wrapper around the search engine (§6: "CLI
// menus" are out of scope as a UI concern, but a minimal wrapper is
// specified for completeness). It is not part of the core; it only wires
// ingest/network/twohop/abtree/pbtree/findnext/bab/export together.
//
// In the style of gaissmai-bart/cmd/main.go: no third-party CLI framework,
// just flag plus a manual subcommand dispatch.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/clueroute/crs/abtree"
	"github.com/clueroute/crs/bab"
	"github.com/clueroute/crs/clue"
	"github.com/clueroute/crs/export"
	"github.com/clueroute/crs/findnext"
	"github.com/clueroute/crs/ingest"
	"github.com/clueroute/crs/network"
	"github.com/clueroute/crs/pbtree"
	"github.com/clueroute/crs/twohop"
)

const (
	exitOK      = 0
	exitBadArgs = 1
	exitNoRoute = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("crs", flag.ContinueOnError)
	graphPath := fs.String("graph", "", "path to a graph JSON document (export.Graph shape)")
	if err := fs.Parse(args); err != nil {
		return exitBadArgs
	}
	rest := fs.Args()
	if *graphPath == "" || len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: crs -graph <path> <findnext|bab|distance|label|pbtree> ...")

		return exitBadArgs
	}

	net, err := loadGraph(*graphPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "crs:", err)

		return exitBadArgs
	}

	switch rest[0] {
	case "findnext":
		return runFindNext(net, rest[1:])
	case "bab":
		return runBAB(net, rest[1:])
	case "distance":
		return runDistance(net, rest[1:])
	case "label":
		return runLabel(net, rest[1:])
	case "pbtree":
		return runPBTree(net, rest[1:])
	default:
		fmt.Fprintln(os.Stderr, "crs: unknown subcommand", rest[0])

		return exitBadArgs
	}
}

func loadGraph(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parser, err := ingest.NewJSONParser(f)
	if err != nil {
		return nil, err
	}

	return ingest.Load(parser)
}

// runFindNext: findnext <src> <kw> <d> <eps> <theta> <ub>
func runFindNext(net *network.Network, args []string) int {
	if len(args) != 6 {
		fmt.Fprintln(os.Stderr, "usage: findnext <src> <kw> <d> <eps> <theta> <ub>")

		return exitBadArgs
	}

	src, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return exitBadArgs
	}
	d, err1 := strconv.ParseFloat(args[2], 64)
	eps, err2 := strconv.ParseFloat(args[3], 64)
	theta, err3 := strconv.ParseFloat(args[4], 64)
	ub, err4 := strconv.ParseFloat(args[5], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return exitBadArgs
	}

	c, err := clue.New(args[1], d, eps)
	if err != nil {
		fmt.Fprintln(os.Stderr, "crs:", err)

		return exitBadArgs
	}

	tree := abtree.Build(net, src)
	finder := findnext.NewABFindNext(map[int64]*abtree.Tree{src: tree})

	cand := finder.FindNext(src, c, theta, ub, nil)
	if !cand.Found {
		fmt.Fprintln(os.Stderr, "crs: no candidate found")

		return exitNoRoute
	}

	enc, _ := json.Marshal(cand)
	fmt.Println(string(enc))

	return exitOK
}

// runBAB: bab <src> <kw,d,eps> <kw,d,eps> ...
func runBAB(net *network.Network, args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: bab <src> <kw,d,eps>...")

		return exitBadArgs
	}

	src, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return exitBadArgs
	}

	clues := make([]clue.Clue, 0, len(args)-1)
	for _, spec := range args[1:] {
		parts := strings.Split(spec, ",")
		if len(parts) != 3 {
			fmt.Fprintln(os.Stderr, "crs: malformed clue", spec)

			return exitBadArgs
		}
		d, err1 := strconv.ParseFloat(parts[1], 64)
		eps, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			return exitBadArgs
		}
		c, err := clue.New(parts[0], d, eps)
		if err != nil {
			fmt.Fprintln(os.Stderr, "crs:", err)

			return exitBadArgs
		}
		clues = append(clues, c)
	}

	query, err := clue.NewQuery(src, clues)
	if err != nil {
		fmt.Fprintln(os.Stderr, "crs:", err)

		return exitBadArgs
	}

	buildStart := time.Now()
	trees := make(map[int64]*abtree.Tree)
	for _, id := range net.NodeIDs() {
		trees[id] = abtree.Build(net, id)
	}
	buildDuration := time.Since(buildStart)

	finder := findnext.NewABFindNext(trees)
	result, searchErr := bab.Search(finder, net, query, bab.Options{})
	result.Timings.BuildDuration = buildDuration
	if searchErr != nil && result.Route == nil {
		fmt.Fprintln(os.Stderr, "crs:", searchErr)

		return exitBadArgs
	}
	if result.Route == nil {
		fmt.Fprintln(os.Stderr, "crs: no route found")

		return exitNoRoute
	}

	enc, _ := json.Marshal(export.NewResult(result))
	fmt.Println(string(enc))

	return exitOK
}

// runDistance: distance <u> <v>
func runDistance(net *network.Network, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: distance <u> <v>")

		return exitBadArgs
	}
	u, err1 := strconv.ParseInt(args[0], 10, 64)
	v, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		return exitBadArgs
	}

	d, err := net.NetworkDistance(u, v)
	if err != nil {
		fmt.Fprintln(os.Stderr, "crs:", err)

		return exitBadArgs
	}

	fmt.Println(d)

	return exitOK
}

// runLabel: label <v>
func runLabel(net *network.Network, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: label <v>")

		return exitBadArgs
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return exitBadArgs
	}

	idx := twohop.Build(net)
	enc, _ := json.Marshal(idx.Labels(v))
	fmt.Println(string(enc))

	return exitOK
}

// runPBTree: pbtree <pivot>
func runPBTree(net *network.Network, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: pbtree <pivot>")

		return exitBadArgs
	}
	pivot, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return exitBadArgs
	}

	idx := twohop.Build(net)
	pr := idx.PivotReverse(pivot)
	tree := pbtree.Build(pivot, pr)

	enc, _ := json.Marshal(struct {
		Pivot int64 `json:"pivot"`
		Size  int   `json:"size"`
	}{Pivot: pivot, Size: tree.Size()})
	fmt.Println(string(enc))

	return exitOK
}
