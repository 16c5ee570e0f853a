package main

import (
	"fmt"
	"math/rand"

	"github.com/logrusorgru/aurora"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/models/model"
)

func main() {
	o := initConfig()
	logx.Disable()

	rng := rand.New(rand.NewSource(o.Seed))
	fmt.Printf("Seed %d, %d games of %d points, AI1 %s, AI2 %s\n", o.Seed, o.Games, o.Points, o.AI1, o.AI2)

	bar := model.NewBar(o.Games, "Playing...")

	var (
		tally Tally
		last  string
	)
	for range o.Games {
		winner, scores, message, err := PlayGame(o, rng)
		if err != nil {
			bar.Close()
			fmt.Println(aurora.Red(err.Error()))
			return
		}

		tally.Add(winner, scores)
		last = message
		bar.Add(1)
	}
	bar.Close()

	fmt.Println()
	fmt.Println(aurora.Bold("Last game: ").String() + last)
	fmt.Println(aurora.Blue(fmt.Sprintf("Player1 wins: %d, points: %d", tally.Player1Wins, tally.Player1)))
	fmt.Println(aurora.Red(fmt.Sprintf("Player2 wins: %d, points: %d", tally.Player2Wins, tally.Player2)))
	fmt.Println(aurora.Yellow(fmt.Sprintf("Draws: %d", tally.Draws)))
}
