// Profiling:
// go build ./profile/view
// go tool pprof -http=":8000" -nodefraction=0.001 ./view cpu.prof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/edwinsyarief/bento"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		r := bento.NewRegistry(numEntities)
		view := bento.NewView4[comp1, comp2, comp3, comp4](r)
		for range numEntities {
			e := r.CreateEntity()
			bento.AddComponent(r, e, comp1{V: 1})
			bento.AddComponent(r, e, comp2{V: 2})
			bento.AddComponent(r, e, comp3{V: 3})
			bento.AddComponent(r, e, comp4{V: 4})
		}

		for range iters {
			view.Reset()
			for view.Next() {
				c1, c2, _, _ := view.Components()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
