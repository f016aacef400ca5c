/*
 * doc.go, part of molcheck.
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

/*
Package molcheck validates molecular structure files and extracts an
atom/bond model from them for visualization.


	**molcheck Capabilities**


    Validates PDB (column records), Tripos MOL2 (section tagged) and
	MDL SDF/MOL (counts line) files, returning a verdict plus
	diagnostics that can be shown to the user as is.

    Reads the atoms of PDB files from the standard fixed columns.
	Lines with broken numeric fields are skipped, not guessed.

    Infers bonds from interatomic distances, restricted to atoms in the
	same or in sequence-adjacent residues. This is a heuristic for
	drawing, not chemistry. The inference can run concurrently and
	still yields the same, ordered, bonds.

    Reads gzip and zstd compressed files transparently.

The chemgraph, chemjson and chemplot subpackages turn the extracted
structure into a gonum graph, JSON/YAML payloads and plots.

Nothing is kept between calls. All functions are safe for concurrent use.
*/
package molcheck
