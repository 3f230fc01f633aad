package llm

import "fmt"

const promptTemplate = `You are a resume parser. Extract the following information from the resume text and format it as a valid JSON object. If any field is not found, use null or empty array as appropriate.

Required format:
{
    "name": "full name of the candidate",
    "email": "email address",
    "education": {
        "degree": "highest degree obtained",
        "branch": "specialization or branch",
        "institution": "university or college name",
        "year": graduation year as number
    },
    "experience": {
        "job_title": "most recent job title",
        "company": "most recent company name",
        "start_date": "start date in YYYY-MM format",
        "end_date": "end date in YYYY-MM format or 'present'"
    },
    "skills": ["skill1", "skill2", "etc"],
    "summary": "brief professional summary"
}

Resume text to parse:
%s

Remember to:
1. Only return a valid JSON object
2. Use null for missing fields
3. Use empty array [] for missing skills
4. Ensure all dates are in YYYY-MM format
5. Do not include any explanations or markdown, just the JSON`

// BuildResumePrompt embeds the resume text verbatim in the fixed instruction
// template.
func BuildResumePrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
