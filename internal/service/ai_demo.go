package service

import (
	"strings"

	"recruiter_hub_backend/internal/model"
)

// Canned output keeps the AI features usable in demos and local development
// where no API key is configured.

func demoGeneratedContent(prompt, contentType string) *GeneratedContent {
	title := prompt
	if len(title) > 80 {
		title = title[:80]
	}

	var body string
	switch contentType {
	case string(model.ContentChecklist):
		body = "# " + title + "\n\n" +
			"## Before you start\n\n" +
			"- [ ] Confirm the role requirements with the hiring manager\n" +
			"- [ ] Review the interview panel and availability\n" +
			"- [ ] Check the req is approved and open in the ATS\n\n" +
			"## Steps\n\n" +
			"- [ ] Kick off the search with an intake meeting\n" +
			"- [ ] Build the sourcing plan and outreach sequences\n" +
			"- [ ] Screen candidates against the must-have criteria\n" +
			"- [ ] Calibrate with the hiring manager after the first five screens\n" +
			"- [ ] Keep candidates warm with weekly status updates\n\n" +
			"## Wrap up\n\n" +
			"- [ ] Document learnings for the next search\n" +
			"- [ ] Close the loop with every candidate in process\n"
	case string(model.ContentPlaybook):
		body = "# " + title + "\n\n" +
			"## When to use this playbook\n\n" +
			"Use this when you need a repeatable approach rather than a one-off answer.\n\n" +
			"## Scenario 1: The standard case\n\n" +
			"Walk through the usual flow step by step. Set expectations early and confirm them in writing.\n\n" +
			"## Scenario 2: The candidate pushes back\n\n" +
			"Listen first. Restate their concern, then work the problem together rather than defending the process.\n\n" +
			"## Scenario 3: The timeline slips\n\n" +
			"Communicate proactively. A candidate who hears from you weekly stays engaged even when things are slow.\n\n" +
			"## Scripts\n\n" +
			"> \"Thanks for flagging that. Help me understand what matters most to you here, and I'll see what we can do.\"\n"
	default:
		body = "# " + title + "\n\n" +
			"## Overview\n\n" +
			"This guide covers the essentials your team needs to handle this consistently.\n\n" +
			"## Key principles\n\n" +
			"1. **Candidate experience first.** Every touchpoint shapes how candidates talk about us.\n" +
			"2. **Write things down.** Decisions and feedback live in the ATS, not in hallway conversations.\n" +
			"3. **Calibrate early.** Misalignment found at offer stage costs weeks.\n\n" +
			"## How to apply this\n\n" +
			"Start with the intake conversation and agree on what a strong profile looks like. " +
			"Revisit that agreement after the first few screens and adjust before going wide.\n\n" +
			"## Common pitfalls\n\n" +
			"- Waiting for perfect candidates instead of calibrating with real ones\n" +
			"- Letting feedback sit unwritten for more than a day\n" +
			"- Treating process steps as optional under time pressure\n"
	}

	return &GeneratedContent{
		Title:  title,
		Body:   body,
		Tags:   []string{"recruiting", "training", "best-practices"},
		IsDemo: true,
	}
}

func demoAnswer(question string) *CopilotAnswer {
	lower := strings.ToLower(question)

	var answer string
	switch {
	case strings.Contains(lower, "sourc") || strings.Contains(lower, "find candidate"):
		answer = "Start with a clear intake: agree on the three must-have skills before you search. " +
			"Build Boolean strings from those skills, then layer in X-ray searches on portfolio sites for the role's craft. " +
			"Personalized outreach that references a candidate's actual work converts several times better than templates."
	case strings.Contains(lower, "interview") || strings.Contains(lower, "screen"):
		answer = "Keep recruiter screens to 30 minutes with a consistent structure: rapport, background walkthrough, " +
			"motivation, logistics, and next steps. Probe for specifics with behavioral questions and write up feedback " +
			"the same day while details are fresh."
	case strings.Contains(lower, "offer") || strings.Contains(lower, "negotiat"):
		answer = "Always deliver offers by phone before anything in writing, and pre-close throughout the process so " +
			"the number is never a surprise. When a candidate pushes back, understand what they value most first; " +
			"compensation is often only part of the story."
	default:
		answer = "Great question. The general guidance: align with your hiring manager early, document decisions in " +
			"the ATS, and keep candidates informed at every stage. Check the content library for a guide covering " +
			"your specific scenario, or ask in the Q&A forum where a teammate may have hands-on experience."
	}

	return &CopilotAnswer{
		Answer:    answer,
		CanAnswer: true,
		Sources:   []AnswerSource{},
		IsDemo:    true,
	}
}

// keywordSearch is the no-API-key search path: match every whitespace term
// against title, description and tags.
func keywordSearch(query string, items []model.Content) []model.Content {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var matched []model.Content
	for _, item := range items {
		haystack := strings.ToLower(item.Title + " " + item.Description + " " + item.Tags)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				matched = append(matched, item)
				break
			}
		}
		if len(matched) == 20 {
			break
		}
	}
	return matched
}
