package gemini

// extractionPrompt instructs the model to emit one JSON object per model
// mentioned in the document. Field names match the persisted catalogue
// format; anything the document does not state must be omitted, never
// guessed.
const extractionPrompt = `You are extracting structured metadata about AI language models from provider documentation.

Read the attached document and return a JSON array with one object per model it describes. Use exactly these field names where the document provides the information:

- model_id: the API identifier (e.g. "gpt-4o", "claude-sonnet-4")
- model_name: the human-readable model name
- dollars_per_million_tokens_input: input price in USD per million tokens
- dollars_per_million_tokens_output: output price in USD per million tokens
- dollars_per_million_tokens_cached_input, dollars_per_million_tokens_cache_read, dollars_per_million_tokens_cache_write_5m, dollars_per_million_tokens_cache_write_1h: cache pricing in USD per million tokens
- max_input_tokens: context window size in tokens
- max_output_tokens: maximum output length in tokens
- max_tools: maximum number of tools per request
- requires_tier: minimum account tier number required, if any
- supports_vision, supports_function_calling, supports_json_mode, supports_streaming, supports_audio, supports_documents, supports_caching, supports_temperature, supports_system_message, supports_pdf_input, supports_tool_choice, is_reasoning_model, is_active: booleans
- model_aliases: array of alternative identifiers
- temperature_values: array of supported temperature values if restricted

Rules:
- Report prices in dollars per MILLION tokens. Convert if the document uses per-1K pricing.
- Omit any field the document does not state. Do not guess or fill defaults.
- Numbers must be JSON numbers, booleans must be JSON booleans.
- Return ONLY the JSON array, no prose.`
