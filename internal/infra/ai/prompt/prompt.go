package prompt

import "fmt"

const defaultRegion = "Indian"

// Build renders the fixed analysis instruction around the content. The same
// template serves all three request variants; for images the content is the
// caption instruction and the image itself rides alongside the message.
func Build(region, content string) string {
	if region == "" {
		region = defaultRegion
	}
	return fmt.Sprintf(`As an expert misinformation analyst specializing in the %s context, analyze the provided content. If the content is an image, describe it, extract any text, and then analyze. Your goal is to identify red flags and educate the user. Do not give a simple true/false verdict.

Content to analyze: --- %s ---

Provide your analysis ONLY in a structured JSON format with keys: "credibility_score", "summary", "red_flags", "educational_insight". The "credibility_score" must be a number from 0 to 10. The "red_flags" key must be a list of JSON objects, where each object has a "flag_type" and a "description". Do not include any text outside the JSON object.`, region, content)
}
