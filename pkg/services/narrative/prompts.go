package narrative

// SystemPrompt frames the completion request.
const SystemPrompt = "You are a financial analyst."

// PromptTemplate builds the user prompt from the three summary figures.
// Expects total revenue, total expenses and net profit, already formatted
// with the currency symbol.
const PromptTemplate = `Analyze this financial data:
- Total Revenue: %s
- Total Expenses: %s
- Net Profit: %s
Write a professional summary for a CA or SME business owner. Include financial health, performance, and any suggestions.`
