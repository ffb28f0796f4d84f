/*
Package ports defines the interfaces (driven ports) between the Mealy engine
core and the outside world.

The engine core depends only on these interfaces; concrete implementations
live under pkg/adapters (memory, yamltable, redis). This keeps the core free
of storage and format concerns and lets hosts swap implementations without
touching the transition loop.
*/
package ports
