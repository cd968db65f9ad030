// Command soup-sweep measures how random soups evolve across a range of
// fill densities: peak and final populations, and how quickly each soup
// settles into still lifes and period-2 ash.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"lifelab/internal/life"
)

type paramSet struct {
	density float64
	seed    int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("density=%.2f seed=%d", p.density, p.seed)
}

type scenarioResult struct {
	params     paramSet
	peakPop    int
	peakStep   int
	finalPop   int
	settled    bool
	settleStep int
}

func main() {
	width := flag.Int("width", 128, "grid width")
	height := flag.Int("height", 128, "grid height")
	steps := flag.Int("steps", 240, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 8, "random seeds per density")
	wrap := flag.Bool("wrap", true, "wrap the edges toroidally")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	densities := []float64{0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.50, 0.65, 0.80}

	var sets []paramSet
	for _, density := range densities {
		for seed := 1; seed <= *seeds; seed++ {
			sets = append(sets, paramSet{density: density, seed: int64(seed)})
		}
	}

	fmt.Printf("Sweeping %d soups on %dx%d (%d workers, %d steps)\n",
		len(sets), *width, *height, *workers, *steps)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(*width, *height, params, *steps, *wrap)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	best := scenarioResult{}
	for res := range results {
		all = append(all, res)
		if res.peakPop > best.peakPop {
			best = res
		}
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].peakPop > all[j].peakPop })

	fmt.Printf("\nTop 5 by peak population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) peak=%d at gen %d, final=%d settled=%v %s\n",
			i+1, res.peakPop, res.peakStep, res.finalPop, res.settled, res.params)
	}

	total := *width * *height
	fmt.Printf("\nPer-density averages over %d seeds:\n", *seeds)
	for _, density := range densities {
		var finals, settles, settleGens int
		for _, res := range all {
			if res.params.density != density {
				continue
			}
			finals += res.finalPop
			if res.settled {
				settles++
				settleGens += res.settleStep
			}
		}
		meanFinal := float64(finals) / float64(*seeds)
		line := fmt.Sprintf("density %.2f: mean final %.1f (%.2f%% of %d cells), settled %d/%d",
			density, meanFinal, 100*meanFinal/float64(total), total, settles, *seeds)
		if settles > 0 {
			line += fmt.Sprintf(" (mean gen %d)", settleGens/settles)
		}
		fmt.Println(line)
	}

	fmt.Printf("\nBest overall: peak=%d at gen %d, final=%d settled=%v %s\n",
		best.peakPop, best.peakStep, best.finalPop, best.settled, best.params)
}

func runScenario(width, height int, params paramSet, steps int, wrap bool) scenarioResult {
	world := life.New(width, height)
	world.Randomize(params.seed, params.density)

	res := scenarioResult{
		params:  params,
		peakPop: world.AliveCells(),
	}

	prev := world.State().Clone()
	prev2 := world.State().Clone()

	for step := 1; step <= steps; step++ {
		world.Step(wrap)
		pop := world.AliveCells()
		if pop > res.peakPop {
			res.peakPop = pop
			res.peakStep = step
		}
		// Matching the state from two generations back means the soup
		// has burned down to still lifes and period-2 ash.
		if world.State().Equal(prev2) {
			res.settled = true
			res.settleStep = step
			break
		}
		prev2 = prev
		prev = world.State().Clone()
	}

	res.finalPop = world.AliveCells()
	return res
}
