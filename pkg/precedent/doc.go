// Package precedent exposes the public contracts for the template pipeline:
// sources, loaders, the parser, and the logical-element model recovered from a
// precedent text. Implementations live under internal/precedent to keep the
// parsing machinery hidden from consumers.
package precedent
