package tomography

import (
	"errors"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		registry := NewRegistry(&Config{Verbose: true})

		Convey("Registered bases should be found by name", func() {
			So(registry.Register(PauliBasis()), ShouldBeNil)
			So(registry.Register(NewBasis("Custom")), ShouldBeNil)

			b, err := registry.Lookup("custom")
			So(err, ShouldBeNil)
			So(b.Name(), ShouldEqual, "Custom")
			So(registry.Names(), ShouldResemble, []string{"Custom", "Pauli"})
		})

		Convey("Registering a name twice should fail", func() {
			So(registry.Register(NewBasis("twice")), ShouldBeNil)
			err := registry.Register(NewBasis("TWICE"))
			So(errors.Is(err, ErrDuplicateBasis), ShouldBeTrue)
		})

		Convey("A nil basis should be rejected", func() {
			So(errors.Is(registry.Register(nil), ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("Missing names should fail with ErrUnknownBasis", func() {
			_, err := registry.Lookup("missing")
			So(errors.Is(err, ErrUnknownBasis), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"missing"`)
		})

		Convey("Concurrent registration and lookup should be safe", func() {
			var wg sync.WaitGroup
			names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

			for _, name := range names {
				wg.Add(2)
				go func(name string) {
					defer wg.Done()
					_ = registry.Register(NewBasis(name))
				}(name)
				go func(name string) {
					defer wg.Done()
					_, _ = registry.Lookup(name)
				}(name)
			}
			wg.Wait()

			if len(registry.Names()) != len(names) {
				spew.Dump(registry.Names())
			}
			So(registry.Names(), ShouldResemble, names)
		})
	})

	Convey("The default registry should hold the standard bases", t, func() {
		So(DefaultRegistry().Names(), ShouldResemble, []string{"Pauli", "SIC"})
		So(DefaultRegistry(), ShouldPointTo, DefaultRegistry())
	})
}
