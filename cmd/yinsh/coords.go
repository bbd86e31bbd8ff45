package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/longyuxi/yinsh"
	"github.com/longyuxi/yinsh/internal/tui"
	"github.com/longyuxi/yinsh/internal/wire"
)

// CoordsCmd prints the empty board, or details for specific points.
type CoordsCmd struct {
	JSON   bool     `help:"Emit the 85-point set as JSON for rendering layers"`
	Points []string `arg:"" optional:"" help:"Points to look up, like f6 or k10"`
}

func (c *CoordsCmd) Run() error {
	if c.JSON {
		coords := yinsh.BoardCoordinates()
		points := make([]wire.CoordData, 0, len(coords))
		for _, p := range coords {
			points = append(points, wire.CoordFromGame(p))
		}
		data, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode points: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(c.Points) == 0 {
		fmt.Println(tui.PlainBoard(yinsh.NewBoard()))
		fmt.Printf("%d points, columns a-k, rows 1-11\n", len(yinsh.BoardCoordinates()))
		return nil
	}

	for _, point := range c.Points {
		coord, err := tui.ParseCoord(point)
		if err != nil {
			return err
		}

		names := make([]string, 0, 6)
		for _, n := range yinsh.Neighbors(coord) {
			names = append(names, tui.FormatCoord(n))
		}
		fmt.Printf("%s = %s, neighbors: %s\n",
			tui.FormatCoord(coord), coord, strings.Join(names, " "))
	}
	return nil
}
