package quiz

// Categories returns the five built-in category sets, in menu order.
// Slugs double as navigation route names.
func Categories() []CategorySet {
	return []CategorySet{
		categoryGit(),
		categoryProgramming(),
		categoryDatabases(),
		categoryWeb(),
		categoryLinux(),
	}
}

// CategoryBySlug looks up a category set by its route slug.
func CategoryBySlug(slug string) (CategorySet, bool) {
	for _, c := range Categories() {
		if c.Slug == slug {
			return c, true
		}
	}
	return CategorySet{}, false
}

func categoryGit() CategorySet {
	return CategorySet{
		Slug: "categoria1",
		Name: "Git Basics",
		Questions: []Question{
			{
				Text:         "Which command initializes a Git repository?",
				MediaRef:     "c1p1",
				Options:      []string{"git start", "git init", "git begin", "git create"},
				CorrectIndex: 1,
			},
			{
				Text:         "What are changes called before you stage them in Git?",
				MediaRef:     "c1p2",
				Options:      []string{"Commits", "Pushes", "Staged", "Unstaged"},
				CorrectIndex: 3,
			},
			{
				Text:         "Which command saves your changes locally?",
				MediaRef:     "c1p3",
				Options:      []string{"git push", "git commit", "git pull", "git status"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which command uploads your changes to the remote repository?",
				MediaRef:     "c1p4",
				Options:      []string{"git fetch", "git push", "git clone", "git merge"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is the local copy of a remote repository called?",
				MediaRef:     "c1p5",
				Options:      []string{"Branch", "Clone", "Fork", "Commit"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which command shows the state of your files?",
				MediaRef:     "c1p6",
				Options:      []string{"git status", "git log", "git diff", "git branch"},
				CorrectIndex: 0,
			},
			{
				Text:         "What is a parallel line of development in a repository called?",
				MediaRef:     "c1p7",
				Options:      []string{"Fork", "Branch", "Clone", "Commit"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which command combines changes from one branch into another?",
				MediaRef:     "c1p8",
				Options:      []string{"git merge", "git rebase", "git pull", "git push"},
				CorrectIndex: 0,
			},
			{
				Text:         "Which file lists paths Git should ignore?",
				MediaRef:     "c1p9",
				Options:      []string{".gitignore", "README.md", "LICENSE", ".gitconfig"},
				CorrectIndex: 0,
			},
			{
				Text:         "Which command downloads a remote repository for the first time?",
				MediaRef:     "c1p10",
				Options:      []string{"git pull", "git fetch", "git clone", "git init"},
				CorrectIndex: 2,
			},
		},
	}
}

func categoryProgramming() CategorySet {
	return CategorySet{
		Slug: "categoria2",
		Name: "Programming Basics",
		Questions: []Question{
			{
				Text:         "What is a variable?",
				MediaRef:     "c2p1",
				Options:      []string{"A fixed value", "A named storage location", "A type of loop", "A compiler flag"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which structure repeats a block of code?",
				MediaRef:     "c2p2",
				Options:      []string{"A condition", "A constant", "A loop", "A comment"},
				CorrectIndex: 2,
			},
			{
				Text:         "What does a function return statement do?",
				MediaRef:     "c2p3",
				Options:      []string{"Restarts the function", "Hands a value back to the caller", "Declares a variable", "Prints to the screen"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is a boolean?",
				MediaRef:     "c2p4",
				Options:      []string{"A whole number", "A text value", "A true/false value", "A list of values"},
				CorrectIndex: 2,
			},
			{
				Text:         "Which of these is a comparison operator?",
				MediaRef:     "c2p5",
				Options:      []string{"=", "==", "+=", "++"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is an array?",
				MediaRef:     "c2p6",
				Options:      []string{"An ordered collection of elements", "A single character", "A kind of function", "A syntax error"},
				CorrectIndex: 0,
			},
			{
				Text:         "What does 'if' do in a program?",
				MediaRef:     "c2p7",
				Options:      []string{"Repeats code forever", "Runs code only when a condition holds", "Imports a library", "Ends the program"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is recursion?",
				MediaRef:     "c2p8",
				Options:      []string{"A loop with no body", "A function calling itself", "Two nested loops", "A compile error"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is a syntax error?",
				MediaRef:     "c2p9",
				Options:      []string{"A wrong result at runtime", "Code the language cannot parse", "A slow algorithm", "A missing test"},
				CorrectIndex: 1,
			},
			{
				Text:         "What does a comment do?",
				MediaRef:     "c2p10",
				Options:      []string{"Speeds up the program", "Documents code without affecting execution", "Declares a constant", "Allocates memory"},
				CorrectIndex: 1,
			},
		},
	}
}

func categoryDatabases() CategorySet {
	return CategorySet{
		Slug: "categoria3",
		Name: "Databases & SQL",
		Questions: []Question{
			{
				Text:         "Which SQL statement reads rows from a table?",
				MediaRef:     "c3p1",
				Options:      []string{"GET", "SELECT", "READ", "FETCH"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which clause filters the rows of a query?",
				MediaRef:     "c3p2",
				Options:      []string{"ORDER BY", "GROUP BY", "WHERE", "HAVING"},
				CorrectIndex: 2,
			},
			{
				Text:         "What is a primary key?",
				MediaRef:     "c3p3",
				Options:      []string{"The first column of a table", "A unique identifier for each row", "An index on every column", "A password for the database"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which statement adds a new row?",
				MediaRef:     "c3p4",
				Options:      []string{"INSERT", "UPDATE", "APPEND", "CREATE"},
				CorrectIndex: 0,
			},
			{
				Text:         "What does a JOIN do?",
				MediaRef:     "c3p5",
				Options:      []string{"Deletes matching rows", "Combines rows from two tables", "Renames a table", "Creates an index"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is a foreign key?",
				MediaRef:     "c3p6",
				Options:      []string{"A key stored abroad", "A reference to a row in another table", "An encrypted column", "A backup copy of the key"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which statement removes rows from a table?",
				MediaRef:     "c3p7",
				Options:      []string{"DROP", "REMOVE", "DELETE", "TRUNCATE COLUMN"},
				CorrectIndex: 2,
			},
			{
				Text:         "What does an index improve?",
				MediaRef:     "c3p8",
				Options:      []string{"Write durability", "Query lookup speed", "Table naming", "Connection limits"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is a transaction?",
				MediaRef:     "c3p9",
				Options:      []string{"A unit of work that commits or rolls back as a whole", "A paid database license", "A kind of join", "A scheduled backup"},
				CorrectIndex: 0,
			},
			{
				Text:         "Which statement changes existing rows?",
				MediaRef:     "c3p10",
				Options:      []string{"ALTER", "MODIFY", "UPDATE", "SET"},
				CorrectIndex: 2,
			},
		},
	}
}

func categoryWeb() CategorySet {
	return CategorySet{
		Slug: "categoria4",
		Name: "Web & Networking",
		Questions: []Question{
			{
				Text:         "Which HTTP method retrieves a resource?",
				MediaRef:     "c4p1",
				Options:      []string{"POST", "GET", "PUT", "DELETE"},
				CorrectIndex: 1,
			},
			{
				Text:         "What does HTTP status 404 mean?",
				MediaRef:     "c4p2",
				Options:      []string{"Server error", "Unauthorized", "Not found", "Redirect"},
				CorrectIndex: 2,
			},
			{
				Text:         "What does DNS translate?",
				MediaRef:     "c4p3",
				Options:      []string{"IP addresses to MAC addresses", "Domain names to IP addresses", "URLs to HTML", "Ports to protocols"},
				CorrectIndex: 1,
			},
			{
				Text:         "What does HTTPS add over HTTP?",
				MediaRef:     "c4p4",
				Options:      []string{"Compression", "Caching", "Encryption", "Faster DNS"},
				CorrectIndex: 2,
			},
			{
				Text:         "Which format is most common for REST API bodies?",
				MediaRef:     "c4p5",
				Options:      []string{"XML", "JSON", "CSV", "YAML"},
				CorrectIndex: 1,
			},
			{
				Text:         "What is a request header?",
				MediaRef:     "c4p6",
				Options:      []string{"The first line of HTML", "Metadata sent with an HTTP request", "The server's hostname", "A TCP packet"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which status code class indicates success?",
				MediaRef:     "c4p7",
				Options:      []string{"2xx", "3xx", "4xx", "5xx"},
				CorrectIndex: 0,
			},
			{
				Text:         "What does a cookie store?",
				MediaRef:     "c4p8",
				Options:      []string{"Server logs", "Small client-side state for a site", "DNS records", "TLS certificates"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which HTTP method creates a resource on the server?",
				MediaRef:     "c4p9",
				Options:      []string{"GET", "HEAD", "POST", "OPTIONS"},
				CorrectIndex: 2,
			},
			{
				Text:         "What is the default port for HTTPS?",
				MediaRef:     "c4p10",
				Options:      []string{"80", "8080", "443", "22"},
				CorrectIndex: 2,
			},
		},
	}
}

func categoryLinux() CategorySet {
	return CategorySet{
		Slug: "categoria5",
		Name: "Linux Command Line",
		Questions: []Question{
			{
				Text:         "Which command lists the files in a directory?",
				MediaRef:     "c5p1",
				Options:      []string{"cd", "ls", "pwd", "cat"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which command changes the current directory?",
				MediaRef:     "c5p2",
				Options:      []string{"mv", "dir", "cd", "ln"},
				CorrectIndex: 2,
			},
			{
				Text:         "Which command prints the current directory path?",
				MediaRef:     "c5p3",
				Options:      []string{"path", "pwd", "where", "loc"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which command shows a file's contents?",
				MediaRef:     "c5p4",
				Options:      []string{"cat", "open", "show", "view"},
				CorrectIndex: 0,
			},
			{
				Text:         "Which command copies files?",
				MediaRef:     "c5p5",
				Options:      []string{"mv", "cp", "copy", "dup"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which command removes a file?",
				MediaRef:     "c5p6",
				Options:      []string{"del", "erase", "rm", "unlink -a"},
				CorrectIndex: 2,
			},
			{
				Text:         "Which command creates a new directory?",
				MediaRef:     "c5p7",
				Options:      []string{"mkdir", "newdir", "md -p", "touch -d"},
				CorrectIndex: 0,
			},
			{
				Text:         "Which command searches text with patterns?",
				MediaRef:     "c5p8",
				Options:      []string{"find", "grep", "locate", "seek"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which command changes a file's permissions?",
				MediaRef:     "c5p9",
				Options:      []string{"chown", "chmod", "perm", "setfacl -R"},
				CorrectIndex: 1,
			},
			{
				Text:         "What does the | (pipe) operator do?",
				MediaRef:     "c5p10",
				Options:      []string{"Runs commands in parallel", "Feeds one command's output into another", "Redirects output to a file", "Comments out a command"},
				CorrectIndex: 1,
			},
		},
	}
}
