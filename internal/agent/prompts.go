package agent

import "fmt"

func extractEmailPrompt(goal string) string {
	return fmt.Sprintf(`You are an expert at finding email addresses in text.
Analyze the following user request and extract the email address if one is present.
If you find an email address, respond with ONLY the email address.
If you do not find an email address, respond with the word "none".

User request: "%s"`, goal)
}

func locationNeededPrompt(goal string) string {
	return fmt.Sprintf(`You are a location-aware assistant. Analyze the user's request to see if it requires a geographical location to be answered effectively.
For example, requests for "restaurants," "weather," or "events" need a location. Requests for general facts do not.

User's request: "%s"

Does this request need a location? Respond with only "yes" or "no".`, goal)
}

func hasLocationPrompt(goal string) string {
	return fmt.Sprintf(`Does the following user request already contain a location (like a city, state, or country)?

Request: "%s"

Respond with only "yes" or "no".`, goal)
}

func planQueryPrompt(goal, history string) string {
	return fmt.Sprintf(`You are a helpful concierge agent. Your task is to understand a user's request and generate a concise, effective search query to find the information they need.

Conversation history:
---
%s
---
User's latest request: "%s"

Based on the request, what is the best, simple search query for a web search?
The query should be 3-5 words.
Respond with ONLY the search query itself.`, history, goal)
}

func selectURLsPrompt(goal, searchResults string) string {
	return fmt.Sprintf(`You are a smart web navigator. Your task is to analyze web search results and select the most promising URLs to find the answer to a user's goal. Avoid generic homepages (like yelp.com or google.com) and prefer specific articles, lists, or maps.

User's goal: "%s"

Search Results:
---
%s
---

Based on the user's goal and the search results, which are the top 2-3 most promising and specific URLs to browse for details?
Respond with ONLY a list of URLs, one per line.`, goal, searchResults)
}

func snippetSummaryPrompt(goal, searchResults string) string {
	return fmt.Sprintf(`You are a helpful concierge agent. The web browser is not working, but you have search result snippets.
User's goal: "%s"
Search Results:
---
%s
---
Please provide a summary based *only* on the search result snippets. Do not suggest browsing URLs.`, goal, searchResults)
}

func synthesizePrompt(goal, aggregated string) string {
	return fmt.Sprintf(`You are a meticulous and trustworthy concierge agent. Your primary goal is to provide a clear, concise, and, above all, ACCURATE answer to the user's request by synthesizing information from multiple sources.

User's latest request: "%s"

You have gathered the following text from one or more websites:
---
%s
---

Fact-Check and Synthesize:
Based on the information above, provide a comprehensive summary that directly answers the user's request.
Before including any business or item in your summary, you MUST verify that it meets ALL the specific criteria from the user's request (e.g., hours of operation, location, specific features).
If you cannot find explicit confirmation that a business meets a criterion, DO NOT include it in the summary. It is better to provide fewer, accurate results than more, inaccurate ones.

Format your response clearly for the user. If listing places, use bullet points.`, goal, aggregated)
}

func draftEmailPrompt(goal, summary, aggregated string) string {
	return fmt.Sprintf(`You are a highly capable assistant responsible for drafting clear and detailed emails based on a research summary.

User's original request: "%s"

Here is the final summary of the research, which has been fact-checked to meet the user's criteria:
---
%s
---

Here is a reminder of the raw text gathered from the websites, which you can use to find details like reservation links:
---
%s
---

Your task is to decide if an email is appropriate to send to the user with this information. If it is, you must draft the email.

- If the summary contains useful, actionable information (like a list of places, contact info, etc.), then an email should be sent.
- If the summary is short, conversational, or indicates no results were found, an email is not needed.

Instructions for the email draft:
1. Create a clear subject line that summarizes the content.
2. The email body should be a list of the places mentioned in the final summary.
3. For each place, provide a brief summary of what it offers and, if you can find one in the raw text, the direct link for reservations.
4. Ensure that ONLY information that strictly matches the user's request (e.g., open on a specific day) is included.

Respond in JSON format.
If sending, the JSON should be: {"send_email": true, "subject": "Your requested information", "body": "..."}
If not sending, the JSON should be: {"send_email": false}`, goal, summary, aggregated)
}
