package services

import "time"

// nowFunc supplies the current time for period resolution and overdue
// checks. Tests swap it out for a fixed clock.
var nowFunc = time.Now
