package browser

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay waits for a random duration between min and max milliseconds
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	time.Sleep(time.Duration(rand.Intn(max-min)+min) * time.Millisecond)
}

// MouseJiggle moves the cursor to a few random viewport positions to
// avoid idle detection
func MouseJiggle(page playwright.Page) {
	for i := 0; i < 3; i++ {
		x := float64(rand.Intn(800) + 100)
		y := float64(rand.Intn(600) + 100)
		page.Mouse().Move(x, y)
		RandomDelay(100, 300)
	}
}

// HumanScroll scrolls down in half-viewport steps with a small upward
// correction, which also triggers lazy-loaded result cards
func HumanScroll(page playwright.Page) {
	for i := 0; i < 3; i++ {
		page.Evaluate("window.scrollBy(0, window.innerHeight / 2)")
		RandomDelay(400, 900)
	}
	page.Evaluate("window.scrollBy(0, -200)")
}
