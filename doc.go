// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

ballotbox is a small voting service: register users, open polls over a
fixed voter list, and let each voter pick one target per poll. A later
pick by the same voter replaces the earlier one in place.

# Starting the Server

Everything has a default, so the server starts with no configuration:

	go run .

Or with flags:

	go run . -p 3030 -s sqlite -d ":memory:"

# Configuration

Flags win over environment variables, which win over a .env file:

  - HOST (-host): Listen host (default: 0.0.0.0)
  - PORT (-p): Server port (default: 3030)
  - STORE_TYPE (-s): memory, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): SQL data source; required for postgres
  - AMQP_URL (-amqp): RabbitMQ URL; events are dropped when unset
  - AMQP_QUEUE (-queue): Event queue name (default: ballotbox)

State never outlives the process. The SQL backends reset their schema
on startup.

# Architecture

  - handlers: HTTP request handlers (users, polls, choices)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Wire types, request decoding and error kinds
  - store: VoteStore with in-memory and SQL backends
  - db: SQL schema
  - events: Mutation events and the RabbitMQ publisher
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
