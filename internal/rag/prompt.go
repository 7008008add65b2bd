package rag

import "fmt"

// systemPrompt constrains the model to the retrieved context. The refusal
// sentence is part of the product contract and must stay byte-identical.
const systemPrompt = `You are a strict assistant. Use ONLY the provided context to answer. If the answer is not in the context, respond exactly with: "I don't have that information in my knowledge base."`

// buildUserPrompt assembles the user message from retrieved context and
// the original question.
func buildUserPrompt(context, question string) string {
	return fmt.Sprintf("Context:\n%s\n\nQuestion:\n%s", context, question)
}
