package artifacts

// JSON schemas for the artifact files produced by the offline training
// pipeline. Every file is validated against its schema before decoding so a
// malformed artifact fails loading with a pointed error instead of a partial
// store.

const manifestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["version", "dimensions"],
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"dimensions": {"type": "integer", "minimum": 1},
		"generated_at": {"type": "string"}
	}
}`

const embeddingsSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["ids", "vectors"],
	"properties": {
		"ids": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		},
		"vectors": {
			"type": "array",
			"items": {
				"type": "array",
				"items": {"type": "number"}
			}
		}
	}
}`

const cfModelSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["global_mean"],
	"properties": {
		"global_mean": {"type": "number"},
		"user_bias": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		},
		"course_bias": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		},
		"user_factors": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {"type": "number"}
			}
		},
		"course_factors": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {"type": "number"}
			}
		}
	}
}`

const interactionsSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["interactions"],
	"properties": {
		"interactions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["user_id", "course_id", "rating"],
				"properties": {
					"user_id": {"type": "string", "minLength": 1},
					"course_id": {"type": "string", "minLength": 1},
					"rating": {"type": "number"},
					"status": {"type": "string"}
				}
			}
		}
	}
}`
