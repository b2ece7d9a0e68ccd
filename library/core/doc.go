// Package core contains the domain model of the library circulation system:
// books with copy counts, users (students and teachers), loan transactions and the
// domain events that record what happened to them.
//
// Everything in this package is free of infrastructure concerns. Time is always passed
// in explicitly, so the same inputs produce the same results, which keeps the loan
// arithmetic (due dates, days late, days remaining) testable without a real clock.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
