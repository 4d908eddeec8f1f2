// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package events publishes committed store mutations. NopPublisher is used
// unless AMQP_URL is set, in which case AMQPPublisher sends JSON messages to
// a durable RabbitMQ queue.
package events
