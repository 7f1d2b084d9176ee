/*
Package ports defines the driven ports (interfaces) for the OncoScreen engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various catalog sources and session backends.

# Key Interfaces

  - CatalogLoader: loads validated catalogs (embedded, directory, Loam).
  - StateStore: keeps live session State (memory, Redis).
  - DistributedLocker: serializes access to a session across replicas.
  - Engine: the stateless questionnaire core consumed by hosts.
*/
package ports
