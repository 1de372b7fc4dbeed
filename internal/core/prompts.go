package core

// prompts.go holds the wording sent to the diagnosis provider. The section
// headings are what the results renderer expects back, so changes here must
// keep the "# " / "## " structure and the severity markers intact.

const (
	// PromptIntro opens every diagnosis request.
	PromptIntro = "Analyze these symptoms and provide a comprehensive health assessment:"

	// ImageInstructions is appended when at least one image is attached. The
	// %d verb receives the number of images.
	ImageInstructions = `IMAGES PROVIDED:
I have included %d image(s) of the affected area(s). Please carefully examine these images and incorporate your visual observations into the diagnosis. Look for:
- Visible signs of injury, swelling, or inflammation
- Skin discoloration, rashes, or abnormalities
- Posture or positioning issues
- Any other visual indicators that might help with diagnosis

Reference each image by its number (Image 1, Image 2, etc.) when discussing visual findings.`

	// ResponseFormat fixes the five-section layout of the answer.
	ResponseFormat = `Please provide a detailed analysis in EXACTLY this 5-section format. Use clear headers and markdown formatting:

# 📋 WHAT THIS MIGHT BE

## Most Likely Condition
[Name of condition]

### In Simple Terms
[Explain in beginner-friendly language what this condition means]

### Why We Think This
[Explain how the symptoms match this condition]

## Other Possibilities
1. [Alternative condition 1] - [Brief explanation]
2. [Alternative condition 2] - [Brief explanation]
3. [Alternative condition 3] - [Brief explanation]

---

# ⚠️ HOW SERIOUS IS THIS?

## Severity Level
[Choose ONE: 🟢 Mild | 🟡 Moderate | 🟠 Significant | 🔴 Severe]

### What This Means
[Explain the severity level in simple terms]

## What You Should Do
[Clear, actionable instruction with timeframe]

## Warning Signs to Watch For
- [Red flag 1]
- [Red flag 2]
- [Red flag 3]

---

# 🏠 WHAT YOU CAN DO AT HOME

## Diet & Nutrition
### Foods to Eat More
- [Food 1]
- [Food 2]
- [Food 3]

### Foods to Avoid
- [Food 1]
- [Food 2]

### Hydration
[Hydration recommendations]

## Physical Treatments

### Rest & Activity
[Instructions on rest and activity levels]

### Hot/Cold Therapy
[When to use ice vs heat, how long, how often]

### Stretches & Exercises
[Step-by-step instructions with frequency]

### Posture & Positioning
[How to sit, sleep, or move]

## Lifestyle Changes
- [Change 1]
- [Change 2]
- [Change 3]

## Over-the-Counter Medications
### Recommended Options
- [Medication name (brand names)] - [Dosage] - [Frequency]

### Important Warnings
[Side effects or precautions]

## When to Stop Home Treatment
[Signs that DIY treatment isn't working]

---

# 🏥 WHAT A DOCTOR MIGHT DO

## The Doctor's Visit
### Questions They'll Ask
- [Question 1]
- [Question 2]
- [Question 3]

### Physical Examination
[What examination they might perform]

## Tests & Diagnosis
### Possible Tests
- [Test 1] - In Simple Terms: [What it does]
- [Test 2] - In Simple Terms: [What it does]

## Treatment Options

### Prescription Medications
[Types they might prescribe and what they do]

### Physical Therapy
[When and why it might be recommended]

### Procedures
[Any medical procedures that might be suggested]

## Recovery Timeline
[Expected healing time and milestones]

---

# 👨‍⚕️ WHICH DOCTOR TO SEE

## Start Here
### Primary Care Doctor / Family Doctor
[When to see them and what they can help with]

## Specialists You Might Need
### [Specialist Name]
- **What They Treat**: [Explanation]
- **When to See Them**: [Specific reasons]
- **What to Expect**: [Brief overview]

## Emergency Situations
### When to Call 911
- [Emergency sign 1]
- [Emergency sign 2]
- [Emergency sign 3]

### When to Visit Urgent Care
[Situations for urgent care vs ER]

---

Remember to use simple, beginner-friendly language throughout. Avoid medical jargon unless you explain it immediately. Be empathetic and supportive in tone.`

	notSpecified  = "Not specified"
	noneSpecified = "None specified"
	notProvided   = "Not provided"
)
