// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Host: listen host (default: 0.0.0.0)
  - Port: listen port (default: 3030)
  - StoreType: memory, sqlite or postgres (default: memory)
  - DatabaseURL: SQL DSN (default ":memory:" for sqlite, required for postgres)
  - AMQPURL: RabbitMQ URL; events are dropped when empty
  - AMQPQueue: RabbitMQ queue (default: ballotbox)

# CLI Flags

	-host      Listen host
	-p         Server port
	-s         Store type
	-d         Database URL
	-amqp      RabbitMQ URL
	-queue     RabbitMQ queue
	-env-file  Environment file (default: .env)

# Environment Variables

Flags fall back to environment variables, read through viper:

	HOST         → -host
	PORT         → -p
	STORE_TYPE   → -s
	DATABASE_URL → -d
	AMQP_URL     → -amqp
	AMQP_QUEUE   → -queue

CLI flags take precedence over environment variables. If the env file
exists it is loaded with godotenv first; variables already set in the
environment are not overridden by it.
*/
package cliparse
