package model

// The base schedule ships with the binary and is never edited in place;
// user customizations live in the overlay stored under customSchedule.

var baseWeekday = []Session{
	{
		Title: "Early Morning (Fajr & DSA)",
		Tasks: []Task{
			{ID: "wd-f-1", Time: "5:00 - 5:25 AM", Description: "🤲 Fajr Prayer & Quran/Dhikr"},
			{ID: "wd-m-1", Time: "5:30 - 5:55 AM", Description: `DSA: Review notes / Read "Grokking Algorithms."`},
			{ID: "wd-m-2", Time: "6:00 - 6:25 AM", Description: `DSA: Solve 1 "Easy" LeetCode problem.`},
			{ID: "wd-m-3", Time: "6:30 - 6:55 AM", Description: "DSA: Analyze solution for the problem."},
			{ID: "wd-study-1", Time: "7:00 - 7:25 AM", Description: "📚 Study Session: Review subjects"},
			{ID: "wd-study-brk", Time: "7:25 - 7:30 AM", Description: "Break"},
			{ID: "wd-study-2", Time: "7:30 - 7:55 AM", Description: "📚 Study Session: Practice problems"},
			{ID: "wd-prep", Time: "8:00 - 8:45 AM", Description: "Breakfast & Commute to University"},
		},
	},
	{
		Title: "University & Dhuhr",
		Tasks: []Task{
			{ID: "wd-uni-1", Time: "9:00 - 1:00 PM", Description: "🎓 University Classes"},
			{ID: "wd-dhuhr", Time: "1:00 - 2:00 PM", Description: "🤲 Dhuhr Prayer + Lunch Break"},
			{ID: "wd-uni-2", Time: "2:00 - 4:00 PM", Description: "🎓 University Classes"},
		},
	},
	{
		Title: "Afternoon (Asr & Commute)",
		Tasks: []Task{
			{ID: "wd-asr", Time: "4:00 - 4:25 PM", Description: "🤲 Asr Prayer"},
			{ID: "wd-commute", Time: "4:30 - 5:30 PM", Description: "Commute Home / Rest"},
		},
	},
	{
		Title: "Evening (Maghrib & DSA Core)",
		Tasks: []Task{
			{ID: "wd-maghrib", Time: "6:00 - 6:25 PM", Description: "🤲 Maghrib Prayer"},
			{ID: "wd-e-1", Time: "6:30 - 6:55 PM", Description: "DSA: Review EPIC lecture / Take Notes."},
			{ID: "wd-e-brk-1", Time: "6:55 - 7:00 PM", Description: "Break"},
			{ID: "wd-e-2", Time: "7:00 - 7:25 PM", Description: `DSA: Solve 1 "Medium" LeetCode problem.`},
			{ID: "wd-e-brk-2", Time: "7:25 - 7:30 PM", Description: "Break"},
			{ID: "wd-e-3", Time: "7:30 - 7:55 PM", Description: "DSA: Analyze best solution for Medium problem."},
		},
	},
	{
		Title: "Night (Isha & Supporting Subjects)",
		Tasks: []Task{
			{ID: "wd-isha", Time: "8:00 - 8:25 PM", Description: "🤲 Isha Prayer + Dinner"},
			{ID: "wd-l-1", Time: "8:30 - 8:55 PM", Description: "Adv. Programming: Watch lecture / Notes."},
			{ID: "wd-l-2", Time: "9:00 - 9:25 PM", Description: "Math / Stats: Watch lecture / Practice."},
			{ID: "wd-l-3", Time: "9:30 - 9:55 PM", Description: "Data Science: Watch lecture / Review terms."},
			{ID: "wd-stop", Time: "10:00 PM", Description: "🛑 STOP. Sleep."},
		},
	},
}

var baseWeekend = []Session{
	{
		Title: "Early Morning",
		Tasks: []Task{
			{ID: "we-f-1", Time: "5:00 - 5:25 AM", Description: "🤲 Fajr Prayer"},
			{ID: "we-study-1", Time: "5:30 - 5:55 AM", Description: "📚 Study Session: Review notes"},
			{ID: "we-study-brk-1", Time: "5:55 - 6:00 AM", Description: "Break"},
			{ID: "we-study-2", Time: "6:00 - 6:25 AM", Description: "📚 Study Session: Practice problems"},
			{ID: "we-study-brk-2", Time: "6:25 - 6:30 AM", Description: "Break"},
			{ID: "we-study-3", Time: "6:30 - 6:55 AM", Description: "📚 Study Session: Read concepts"},
			{ID: "we-breakfast", Time: "7:00 - 7:30 AM", Description: "Breakfast"},
			{ID: "we-study-4", Time: "7:30 - 7:55 AM", Description: "📚 Study Session: Light Reading / Review"},
			{ID: "we-study-brk-3", Time: "7:55 - 8:00 AM", Description: "Break"},
			{ID: "we-study-5", Time: "8:00 - 8:25 AM", Description: "📚 Study Session: Practice / Prep for day"},
			{ID: "we-study-brk-4", Time: "8:25 - 8:30 AM", Description: "Break"},
			{ID: "we-study-6", Time: "8:30 - 8:55 AM", Description: "📚 Study Session: Final review"},
		},
	},
	{
		Title: "Morning Session (DSA)",
		Tasks: []Task{
			{ID: "we-m-1", Time: "9:00 - 9:25 AM", Description: "DSA: Review week's topics."},
			{ID: "we-m-brk-1", Time: "9:25 - 9:30 AM", Description: "Break"},
			{ID: "we-m-2", Time: "9:30 - 9:55 AM", Description: `DSA: Solve 1 "Medium" LeetCode problem.`},
			{ID: "we-m-brk-2", Time: "9:55 - 10:00 AM", Description: "Break"},
			{ID: "we-m-3", Time: "10:00 - 10:25 AM", Description: "DSA: Analyze solution (time/space)."},
			{ID: "we-m-brk-3", Time: "10:25 - 10:30 AM", Description: "Break"},
			{ID: "we-m-4", Time: "10:30 - 10:55 AM", Description: `DSA: Solve a 2nd "Medium" LeetCode problem.`},
			{ID: "we-long-brk", Time: "11:00 - 11:30 AM", Description: "Long Break"},
			{ID: "we-skill-1", Time: "11:30 - 11:55 AM", Description: "Math / Stats: Lecture & Notes."},
			{ID: "we-skill-2", Time: "12:00 - 12:55 PM", Description: "Math / Stats: Practice Problems."},
		},
	},
	{
		Title: "Mid-Day (Dhuhr & Skills)",
		Tasks: []Task{
			{ID: "we-dhuhr", Time: "1:00 - 2:00 PM", Description: "🤲 Dhuhr Prayer + Lunch Break"},
			{ID: "we-ds-1", Time: "2:00 - 2:25 PM", Description: "Data Science: Watch lecture & notes."},
			{ID: "we-ds-2", Time: "2:30 - 2:55 PM", Description: "Data Science: Review concepts."},
			{ID: "we-ap-1", Time: "3:00 - 3:25 PM", Description: "Adv. Programming: Lecture & notes."},
			{ID: "we-ap-2", Time: "3:30 - 3:55 PM", Description: "Adv. Programming: Lecture & notes."},
		},
	},
	{
		Title: "Afternoon (Asr & Hard DSA)",
		Tasks: []Task{
			{ID: "we-asr", Time: "4:00 - 4:25 PM", Description: "🤲 Asr Prayer"},
			{ID: "we-hard-1", Time: "4:30 - 4:55 PM", Description: `DSA: Try 1 "Hard" LeetCode problem.`},
			{ID: "we-hard-2", Time: "5:00 - 5:25 PM", Description: `DSA: Review solution for "Hard" problem.`},
			{ID: "we-review", Time: "5:30 - 5:55 PM", Description: "Review: Look at all notes from the day."},
		},
	},
	{
		Title: "Evening (Maghrib & Planning)",
		Tasks: []Task{
			{ID: "we-maghrib", Time: "6:00 - 6:25 PM", Description: "🤲 Maghrib Prayer"},
			{ID: "we-plan", Time: "6:30 - 6:55 PM", Description: "Plan: Write study goals for next week."},
			{ID: "we-free", Time: "7:00 - 8:00 PM", Description: "Free Time / Family / Dinner"},
			{ID: "we-isha", Time: "8:00 - 8:25 PM", Description: "🤲 Isha Prayer"},
			{ID: "we-stop", Time: "8:30 PM", Description: "🛑 STOP. Enjoy your evening."},
		},
	},
}

// BaseSchedule returns a deep copy of the built-in session list for the
// day type, so callers can never mutate the shipped data.
func BaseSchedule(day DayType) []Session {
	if day == DayTypeWeekend {
		return CopySessions(baseWeekend)
	}
	return CopySessions(baseWeekday)
}

// BaseTaskCount returns the task count of the built-in schedule for the
// day type.
func BaseTaskCount(day DayType) int {
	if day == DayTypeWeekend {
		return CountTasks(baseWeekend)
	}
	return CountTasks(baseWeekday)
}
