package tomography

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMatrix(t *testing.T) {
	Convey("Given the Pauli Y operator", t, func() {
		y := Matrix{{0, -1i}, {1i, 0}}

		So(y.Rows(), ShouldEqual, 2)
		So(y.Cols(), ShouldEqual, 2)
		So(y.IsHermitian(0), ShouldBeTrue)
		So(y.Trace(), ShouldEqual, complex(0, 0))

		Convey("Y·Y should be the identity", func() {
			yy, err := y.Mul(y)
			So(err, ShouldBeNil)
			So(yy.Equal(Matrix{{1, 0}, {0, 1}}, 1e-12), ShouldBeTrue)
		})

		Convey("Projectors onto |±i⟩ should sum to the identity", func() {
			sum, err := Outer(ketPlusI...).Add(Outer(ketMinusI...))
			So(err, ShouldBeNil)
			So(sum.Equal(Matrix{{1, 0}, {0, 1}}, 1e-12), ShouldBeTrue)
		})

		Convey("Shape mismatches should fail", func() {
			_, err := y.Mul(NewMatrix(3, 1))
			So(err, ShouldNotBeNil)

			_, err = y.Add(NewMatrix(2, 3))
			So(err, ShouldNotBeNil)
			So(y.Equal(NewMatrix(1, 1), 1), ShouldBeFalse)
		})

		Convey("Dagger of a non-hermitian matrix should differ", func() {
			m := Matrix{{0, 1}, {0, 0}}
			So(m.IsHermitian(1e-12), ShouldBeFalse)
			So(m.Dagger().Equal(Matrix{{0, 0}, {1, 0}}, 0), ShouldBeTrue)
			So(m.Scale(2i)[0][1], ShouldEqual, complex(0, 2))
		})
	})
}
