/*
 * v3_test.go, part of gomatsci.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestGeo(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	T := Zeros(A.NVecs())
	T.Mul(A, gnEye(3))
	if !mat.Equal(T, A) {
		Te.Errorf("A times identity should be A, got %v", T)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	fmt.Println("View\n", A, "\n", View)
	if A.At(1, 0) != 100 {
		Te.Errorf("Changes in a view should be reflected in the original matrix")
	}
}

func TestNewMatrixErrors(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Errorf("A slice with 4 elements can't make a Nx3 matrix")
	} else if e, ok := err.(*Error); !ok || len(e.Decorate("")) != 1 {
		Te.Errorf("Expected a decorated v3.Error, got %v", err)
	}
	E, err := NewMatrix(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if E.NVecs() != 0 || Zeros(0).Len() != 0 {
		Te.Errorf("Empty matrices should have 0 vectors")
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{4, 5, 6, 10, 11, 12, 16, 17, 18}
	if !floats.Equal(B.RawMatrix().Data, want) {
		Te.Errorf("SomeVecs got %v", B)
	}
	err = B.SomeVecsSafe(A, []int{1, 3, 9})
	if err == nil {
		Te.Errorf("An out-of-range index should produce an error")
	}
	fmt.Println("Expected error:", err)
}

func TestArrayHelpers(Te *testing.T) {
	x := [3]float64{1, 0, 0}
	y := [3]float64{0, 1, 0}
	if Cross(x, y) != [3]float64{0, 0, 1} {
		Te.Errorf("x cross y should be z, got %v", Cross(x, y))
	}
	if Dot(x, y) != 0 {
		Te.Errorf("x and y should be orthogonal")
	}
	if math.Abs(Norm([3]float64{3, 4, 0})-5) > appzero {
		Te.Errorf("Wrong norm")
	}
	F := Zeros(1)
	X, _ := NewMatrix([]float64{1, 0, 0})
	Y, _ := NewMatrix([]float64{0, 1, 0})
	F.Cross(X, Y)
	if F.Vec(0) != [3]float64{0, 0, 1} {
		Te.Errorf("Matrix cross product failed: %v", F)
	}
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	F2 := Zeros(2)
	F2.SubVec(A, X)
	if F2.Vec(1) != [3]float64{1, 2, 2} {
		Te.Errorf("SubVec failed: %v", F2)
	}
	F2.AddVec(F2, X)
	if !mat.Equal(F2, A) {
		Te.Errorf("AddVec should undo SubVec: %v", F2)
	}
	F2.SwapVecs(0, 1)
	if F2.Vec(0) != [3]float64{2, 2, 2} {
		Te.Errorf("SwapVecs failed: %v", F2)
	}
}

func TestDet(Te *testing.T) {
	if Det(gnEye(3)) != 1 {
		Te.Errorf("The determinant of the identity is 1")
	}
	A, _ := NewMatrix([]float64{1, 0, 0, 0, 1, 0, 1, 1, 0})
	if Det(A) != 0 {
		Te.Errorf("Coplanar vectors should have a zero determinant")
	}
}
