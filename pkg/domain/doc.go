/*
Package domain contains the core domain models of the OncoScreen engine.

It defines the questionnaire building blocks (Question, Option), the answer
history, the session State, the Actions a host can dispatch and the derived
View a host renders. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Question / Option: a node of a screening catalog and its outgoing branches.
  - Answer / History: the user's choices in answer order, also the undo stack.
  - State: the runtime snapshot of a session (Screen, History, Current Question, Recommendation).
  - Action: a discrete user interaction (select test, answer, back, reset, exit).
  - View: what a host should display, always derived from State.
*/
package domain
