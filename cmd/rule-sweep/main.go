package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"wolfram-ca/internal/automaton"
	"wolfram-ca/pkg/core"

	"github.com/cheggaaa/pb/v3"
)

// result summarizes one rule's behavior from a fixed random seed row.
type result struct {
	rule        int
	meanDensity float64
	dieOutStep  int
	period      int
	periodStart int
}

func (r result) String() string {
	s := fmt.Sprintf("rule %3d density=%.3f", r.rule, r.meanDensity)
	if r.dieOutStep >= 0 {
		s += fmt.Sprintf(" died@%d", r.dieOutStep)
	}
	if r.period > 0 {
		s += fmt.Sprintf(" period=%d from %d", r.period, r.periodStart)
	}
	return s
}

// survey evolves one rule from a seeded random row, recording live-cell
// density, the step the row died out (if any), and the first repeated row.
func survey(ruleIndex, length, steps int, seed int64) (result, error) {
	rule, err := automaton.NewRule(ruleIndex)
	if err != nil {
		return result{}, err
	}

	gen := automaton.NewGeneration(length)
	gen.Randomize(core.NewRNG(seed))

	res := result{rule: ruleIndex, dieOutStep: -1}
	seen := map[string]int{string(gen.Cells()): 0}
	liveTotal := 0

	for step := 1; step <= steps; step++ {
		gen, err = gen.Evolve(rule)
		if err != nil {
			return result{}, err
		}

		live := 0
		for _, c := range gen.Cells() {
			if c != 0 {
				live++
			}
		}
		liveTotal += live
		if live == 0 && res.dieOutStep < 0 {
			res.dieOutStep = step
		}

		key := string(gen.Cells())
		if first, ok := seen[key]; ok && res.period == 0 {
			res.period = step - first
			res.periodStart = first
		}
		seen[key] = step
	}

	res.meanDensity = float64(liveTotal) / float64(steps*length)
	return res, nil
}

// selectPool picks the rules to survey: the curated pool by default, every
// rule when asked.
func selectPool(all bool) []int {
	if all {
		return automaton.All()
	}
	return automaton.Curated()
}

func main() {
	length := flag.Int("length", 160, "cells per generation")
	steps := flag.Int("steps", 160, "generations to evolve per rule")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed for the shared starting row")
	all := flag.Bool("all", false, "survey all 256 rules instead of the curated pool")
	flag.Parse()

	pool := selectPool(*all)

	bar := pb.StartNew(len(pool))

	jobs := make(chan int)
	results := make([]result, 0, len(pool))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ruleIndex := range jobs {
				res, err := survey(ruleIndex, *length, *steps, *seed)
				if err != nil {
					log.Fatal(err)
				}
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
				bar.Increment()
			}
		}()
	}

	for _, ruleIndex := range pool {
		jobs <- ruleIndex
	}
	close(jobs)
	wg.Wait()
	bar.Finish()

	sort.Slice(results, func(i, j int) bool {
		return results[i].meanDensity > results[j].meanDensity
	})

	died, periodic := 0, 0
	for _, res := range results {
		fmt.Println(res)
		if res.dieOutStep >= 0 {
			died++
		}
		if res.period > 0 {
			periodic++
		}
	}
	fmt.Printf("\n%d rules surveyed: %d died out, %d settled into a short period\n",
		len(results), died, periodic)
}
