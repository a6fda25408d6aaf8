package sampling

import (
	"math"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const draws = 1000

func TestSamplerInt(t *testing.T) {
	Convey("Given a sampler on the process-wide generator", t, func() {
		s := New()

		Convey("When drawing integers in [8, 15]", func() {
			seen := map[int]bool{}
			for i := 0; i < draws; i++ {
				v := s.Int(8, 15)
				So(v, ShouldBeBetweenOrEqual, 8, 15)
				seen[v] = true
			}

			Convey("Then both ends of the range should be reachable", func() {
				So(seen[8], ShouldBeTrue)
				So(seen[15], ShouldBeTrue)
			})
		})

		Convey("When the range includes negatives", func() {
			for i := 0; i < draws; i++ {
				So(s.Int(-8, 2), ShouldBeBetweenOrEqual, -8, 2)
			}
		})

		Convey("When the range is a single value", func() {
			So(s.Int(125, 125), ShouldEqual, 125)
		})

		Convey("When the bounds are swapped", func() {
			for i := 0; i < 100; i++ {
				So(s.Int(10, 5), ShouldBeBetweenOrEqual, 5, 10)
			}
		})
	})
}

func TestSamplerFloat1(t *testing.T) {
	Convey("Given a sampler", t, func() {
		s := New()

		Convey("When drawing one-decimal floats in [8.5, 9.2]", func() {
			for i := 0; i < draws; i++ {
				v := s.Float1(8.5, 9.2)
				So(v, ShouldBeBetweenOrEqual, 8.5, 9.2)
				So(math.Abs(v*10-math.Round(v*10)), ShouldBeLessThan, 1e-9)
			}
		})

		Convey("When the bounds are off the one-decimal grid", func() {
			for i := 0; i < draws; i++ {
				So(s.Float1(0.04, 0.06), ShouldBeBetweenOrEqual, 0.04, 0.06)
			}
		})
	})
}

func TestSamplerSeries(t *testing.T) {
	Convey("Given a sampler", t, func() {
		s := New()

		Convey("When drawing a seven point series", func() {
			series := s.IntSeries(7, 75, 95)

			Convey("Then it should have seven bounded values", func() {
				So(series, ShouldHaveLength, 7)
				for _, v := range series {
					So(v, ShouldBeBetweenOrEqual, 75, 95)
				}
			})
		})

		Convey("When asking for an empty series", func() {
			So(s.IntSeries(0, 1, 2), ShouldBeEmpty)
			So(s.IntSeries(-3, 1, 2), ShouldBeEmpty)
		})
	})
}

func TestChoiceAndSample(t *testing.T) {
	Convey("Given a fixed set", t, func() {
		s := New()
		grades := []string{"A+", "A", "A-"}

		Convey("When choosing repeatedly", func() {
			seen := map[string]int{}
			for i := 0; i < draws; i++ {
				g := Choice(s, grades)
				So(grades, ShouldContain, g)
				seen[g]++
			}

			Convey("Then every member should come up", func() {
				So(seen, ShouldHaveLength, 3)
			})
		})

		Convey("When choosing from an empty set", func() {
			So(func() { Choice(s, []string{}) }, ShouldPanic)
		})

		Convey("When sampling 3 of 5 without replacement", func() {
			set := []string{"a", "b", "c", "d", "e"}
			for i := 0; i < draws; i++ {
				got := Sample(s, set, 3)
				So(got, ShouldHaveLength, 3)
				uniq := map[string]bool{}
				for _, v := range got {
					So(set, ShouldContain, v)
					uniq[v] = true
				}
				So(uniq, ShouldHaveLength, 3)
			}
		})

		Convey("When k exceeds the set", func() {
			So(Sample(s, grades, 10), ShouldHaveLength, 3)
			So(Sample(s, grades, 0), ShouldBeEmpty)
		})
	})
}

func TestSeededSampler(t *testing.T) {
	Convey("Given two samplers with the same seed", t, func() {
		a := New(WithSeed(1, 2))
		b := New(WithSeed(1, 2))

		Convey("Then they should produce the same sequence", func() {
			for i := 0; i < 50; i++ {
				So(a.Int(0, 1000), ShouldEqual, b.Int(0, 1000))
				So(a.Float1(0, 100), ShouldEqual, b.Float1(0, 100))
			}
		})
	})

	Convey("Given a seeded sampler shared by many goroutines", t, func() {
		s := New(WithSeed(7, 7))
		var wg sync.WaitGroup
		results := make(chan int, 400)
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					results <- s.Int(1, 6)
				}
			}()
		}
		wg.Wait()
		close(results)

		Convey("Then every draw should stay in bounds", func() {
			n := 0
			for v := range results {
				So(v, ShouldBeBetweenOrEqual, 1, 6)
				n++
			}
			So(n, ShouldEqual, 400)
		})
	})
}
