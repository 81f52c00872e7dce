package conversation

import (
	"strings"
	"time"
)

var introChunks = []string{
	"Hi", ",", " Chatbot", " UI", " is", " a", " dependency", " free",
	" UI", " you", " can", " use", " in", " your", " projects", ".",
	" It", " is", " licensed", " under", " the", " MIT", " License", ".",
}

var aboutChunks = []string{
	"Hi", "!", " Chat", "bot", " UI", " is", " a", " JavaScript",
	" project", " designed", " to", " handle", " the", " user", " interface", " part",
	" of", " conversations", " with", " a", " chat", "bot", ".", " It",
	" includes", " an", " input", " field", " for", " users", " to", " type",
	" their", " messages", " and", " displays", " messages", " from", " both", " the",
	" user", " and", " the", " bot", ".", " Additionally", ",", " it",
	" supports", " special", " messages", " and", " has", " call", "back", " functionality",
	" for", " handling", " documents", ".", "\n\n", "One", " of", " its",
	" standout", " features", " is", " that", " it", "'", "s", " completely",
	" dependency", "-", "free", ",", " meaning", " it", " doesn't", " rely",
	" on", " other", " libraries", " or", " frameworks", " to", " function", ".",
	" This", " makes", " it", " easy", " to", " integrate", " into", " existing",
	" apps", " or", " websites", ".",
}

// exampleImage is a 24x24 PNG icon.
const exampleImage = "" +
	"iVBORw0KGgoAAAANSUhEUgAAABgAAAAYCAYAAADgdz34AAAABHNCSVQICAgIfAhkiAAAAAlwSFlzAAAApgAAAKYB3X3/OAAA" +
	"ABl0RVh0U29mdHdhcmUAd3d3Lmlua3NjYXBlLm9yZ5vuPBoAAANCSURBVEiJtZZPbBtFFMZ/M7ubXdtdb1xSFyeilBapySVU" +
	"8h8OoFaooFSqiihIVIpQBKci6KEg9Q6H9kovIHoCIVQJJCKE1ENFjnAgcaSGC6rEnxBwA04Tx43t2FnvDAfjkNibxgHxnWb2" +
	"e/u992bee7tCa00YFsffekFY+nUzFtjW0LrvjRXrCDIAaPLlW0nHL0SsZtVoaF98mLrx3pdhOqLtYPHChahZcYYO7KvPFxvR" +
	"l5XPp1sN3adWiD1ZAqD6XYK1b/dvE5IWryTt2udLFedwc1+9kLp+vbbpoDh+6TklxBeAi9TL0taeWpdmZzQDry0AcO+jQ12R" +
	"yohqqoYoo8RDwJrU+qXkjWtfi8Xxt58BdQuwQs9qC/afLwCw8tnQbqYAPsgxE1S6F3EAIXux2oQFKm0ihMsOF71dHYx+f3NN" +
	"D68ghCu1YIoePPQN1pGRABkJ6Bus96CutRZMydTl+TvuiRW1m3n0eDl0vRPcEysqdXn+jsQPsrHMquGeXEaY4Yk4wxWcY5V/" +
	"9scqOMOVUFthatyTy8QyqwZ+kDURKoMWxNKr2EeqVKcTNOajqKoBgOE28U4tdQl5p5bwCw7BWquaZSzAPlwjlithJtp3pTIm" +
	"SqQRrb2Z8PHGigD4RZuNX6JYj6wj7O4TFLbCO/Mn/m8R+h6rYSUb3ekokRY6f/YukArN979jcW+V/S8g0eT/N3VN3kTqWbQ4" +
	"28m9/8k0P/1aIhF36PccEl6EhOcAUCrXKZXXWS3XKd2vc/TRBG9O5ELC17MmWubD2nKhUKZa26Ba2+D3P+4/MNCFwg59oWVe" +
	"YhkzgN/JDR8deKBoD7Y+ljEjGZ0sosXVTvbc6RHirr2reNy1OXd6pJsQ+gqjk8VWFYmHrwBzW/n+uMPFiRwHB2I7ih8ciHFx" +
	"Ikd/3Omk5tCDV1t+2nNu5sxxpDFNx+huNhVT3/zMDz8usXC3ddaHBj1GHj/As08fwTS7Kt1HBTmyN29vdwAw+/wbwLVOJ3uA" +
	"D1wi/dUH7Qei66PfyuRj4Ik9is+hglfbkbfR3cnZm7chlUWLdwmprtCohX4HUtlOcQjLYCu+fzGJH2QRKvP3UNz8bWk1qMxj" +
	"GTOMThZ3kvgLI5AzFfo379UAAAAASUVORK5CYII="

// Examples returns the built-in demo conversations: a short text reply, a
// longer text reply and a mixed reply with tools, an image and a document.
func Examples() []Conversation {
	return []Conversation{
		{Name: "intro", Events: textEvents(introChunks, Seconds(0.04))},
		{Name: "about", Events: textEvents(aboutChunks, Seconds(0.03))},
		{Name: "tools", Events: toolsScript()},
	}
}

func toolsScript() []TimedEvent {
	return []TimedEvent{
		EventAfter(Seconds(0.6), TextChunk{Content: "Some", MessageItemID: 0}),
		EventAfter(Seconds(0.02), ToolResult{
			Name:          "Supertool",
			Content:       "This is an example tool response.",
			MessageItemID: 1,
		}),
		EventAfter(Seconds(0.04), TextChunk{Content: " tool", MessageItemID: 0}),
		EventAfter(Seconds(0.04), TextChunk{Content: " output", MessageItemID: 0}),
		EventAfter(Seconds(0.2), TextChunk{Content: " for tes", MessageItemID: 0}),
		EventAfter(Seconds(0.04), TextChunk{Content: "ting.", MessageItemID: 0}),
		EventAfter(Seconds(0.7), ToolResult{
			Name:          "Second Tool",
			Content:       "Another Tool",
			MessageItemID: 2,
		}),
		EventAfter(Seconds(0.04), ImageResult{Content: exampleImage, MessageItemID: 3}),
		EventAfter(Seconds(0.01), DocumentResult{
			Title:   "Example Document",
			Content: strings.Repeat("Lorem Ipsum ", 1000),
			Icon:    "📄",
		}),
	}
}

func textEvents(chunks []string, delay time.Duration) []TimedEvent {
	events := make([]TimedEvent, 0, len(chunks))
	for _, chunk := range chunks {
		events = append(events, EventAfter(delay, TextChunk{Content: chunk, MessageItemID: 0}))
	}
	return events
}
