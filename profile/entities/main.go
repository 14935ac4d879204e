// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/bento"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		r := bento.NewRegistry(numEntities)
		view := bento.NewView2[comp1, comp2](r)

		for range iters {
			for range numEntities {
				e := r.CreateEntity()
				bento.AddComponent(r, e, comp1{V: 1, W: 2})
				bento.AddComponent(r, e, comp2{V: 3, W: 4})
			}
			view.Reset()
			for view.Next() {
				c1, c2 := view.Components()
				c1.V += c2.V
				c1.W += c2.W
			}
			view.Each(func(e bento.Entity, c1 *comp1, c2 *comp2) {
				r.DestroyEntity(e)
			})
		}
	}
}
