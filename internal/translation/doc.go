// Package translation turns word lists into collections by asking a
// language model for the meanings of each word. OpenAI and Gemini are
// supported; calls go through a circuit breaker and an in-memory cache.
package translation
