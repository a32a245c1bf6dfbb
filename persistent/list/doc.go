/*
Package list implements an immutable persistent cons list.

Prepending to a persistent list is O(1) and shares the entire existing list
between the old and the new incarnation. Lists are the natural accumulator
for fold-style algorithms and back the iteration machinery of the persistent
map in this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list
