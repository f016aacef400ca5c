/*
 * graph.go, part of molcheck.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package chemgraph

import (
	"fmt"
	"sort"

	"github.com/rmera/molcheck"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Topology is the connectivity of a structure as a gonum weighted
//undirected graph. Node IDs are the atom indexes of the structure.
type Topology struct {
	*simple.WeightedUndirectedGraph
	S *molcheck.StructureData
}

//FromStructure builds a Topology with one node per atom and one edge per
//bond. The edge weight is weightfunc(bond), or the bond distance if
//weightfunc is nil. It returns an error if a bond points outside the atom
//slice or joins an atom to itself.
func FromStructure(S *molcheck.StructureData, weightfunc func(molcheck.Bond) float64) (*Topology, error) {
	if weightfunc == nil {
		weightfunc = func(B molcheck.Bond) float64 { return B.Distance }
	}
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := range S.Atoms {
		g.AddNode(simple.Node(i))
	}
	n := len(S.Atoms)
	for k, b := range S.Bonds {
		if b.Atom1 < 0 || b.Atom2 < 0 || b.Atom1 >= n || b.Atom2 >= n || b.Atom1 == b.Atom2 {
			return nil, fmt.Errorf("chemgraph: bond %d (%d-%d) is not valid for %d atoms", k, b.Atom1, b.Atom2, n)
		}
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(b.Atom1), simple.Node(b.Atom2), weightfunc(b)))
	}
	return &Topology{WeightedUndirectedGraph: g, S: S}, nil
}

//Degree returns the number of bonds of the atom with index i.
func (T *Topology) Degree(i int) int {
	return T.From(int64(i)).Len()
}

//Neighbors returns the sorted indexes of the atoms bonded to atom i.
func (T *Topology) Neighbors(i int) []int {
	ret := nodeIndexes(graph.NodesOf(T.From(int64(i))))
	sort.Ints(ret)
	return ret
}

//Fragments returns the connected components of the structure, each as a
//sorted slice of atom indexes. Fragments are sorted by their first atom,
//so isolated atoms show up as single-atom fragments in file order.
func (T *Topology) Fragments() [][]int {
	cc := topo.ConnectedComponents(T.WeightedUndirectedGraph)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		f := nodeIndexes(c)
		sort.Ints(f)
		ret = append(ret, f)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Largest returns the fragment with the most atoms. Ties go to the one
//appearing first. It returns nil for an empty structure.
func (T *Topology) Largest() []int {
	var best []int
	for _, f := range T.Fragments() {
		if len(f) > len(best) {
			best = f
		}
	}
	return best
}

func nodeIndexes(nodes []graph.Node) []int {
	ret := make([]int, 0, len(nodes))
	for _, v := range nodes {
		ret = append(ret, int(v.ID()))
	}
	return ret
}
