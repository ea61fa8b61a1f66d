package domaindata

import "github.com/Sid2318/Edufy/internal/model"

// Flashcards maps each domain to curated template flashcards. Domains
// without entries (business, literature, general) rely entirely on cards
// extracted from document content.
var Flashcards = map[string][]model.Flashcard{
	"computer_networks": {
		{Question: "Quick Recall: OSI model has how many layers?", Answer: "7 layers (Physical, Data Link, Network, Transport, Session, Presentation, Application)", Difficulty: model.DifficultyEasy, Category: "fundamentals"},
		{Question: "Compare: Hub vs Switch - which is smarter?", Answer: "Switch is smarter - it learns MAC addresses and sends data only to intended recipient. Hub broadcasts to all ports.", Difficulty: model.DifficultyMedium, Category: "comparison"},
		{Question: "Definition: What does IP stand for and what does it do?", Answer: "Internet Protocol - provides addressing and routing to deliver packets across networks", Difficulty: model.DifficultyEasy, Category: "definition"},
		{Question: "Process: How does DNS resolution work in 3 steps?", Answer: "1) Browser checks cache 2) Queries DNS server 3) DNS returns IP address for domain name", Difficulty: model.DifficultyMedium, Category: "process"},
		{Question: "Quick Check: TCP vs UDP - which guarantees delivery?", Answer: "TCP (Transmission Control Protocol) guarantees delivery with error checking. UDP is faster but unreliable.", Difficulty: model.DifficultyEasy, Category: "comparison"},
		{Question: "Think: Why do we need subnetting?", Answer: "To divide large networks into smaller segments for better performance, security, and efficient IP address usage", Difficulty: model.DifficultyHard, Category: "concept"},
		{Question: "Layers: Name the bottom 3 layers of OSI model", Answer: "Physical (Layer 1), Data Link (Layer 2), Network (Layer 3)", Difficulty: model.DifficultyMedium, Category: "recall"},
		{Question: "Security: What is a firewall's primary function?", Answer: "Controls incoming and outgoing network traffic based on predetermined security rules", Difficulty: model.DifficultyEasy, Category: "definition"},
	},
	"operating_systems": {
		{Question: "OS Functions: What are the 4 main functions of an OS?", Answer: "Process Management, Memory Management, File System Management, I/O Management", Difficulty: model.DifficultyEasy, Category: "fundamentals"},
		{Question: "Process vs Thread: Key difference?", Answer: "Process = independent program with own memory. Thread = lightweight unit within process, shares memory", Difficulty: model.DifficultyMedium, Category: "comparison"},
		{Question: "CPU Scheduling: Name 3 common algorithms", Answer: "FCFS (First Come First Serve), SJF (Shortest Job First), Round Robin", Difficulty: model.DifficultyMedium, Category: "algorithm"},
		{Question: "Deadlock: What are the 4 necessary conditions?", Answer: "Mutual Exclusion, Hold & Wait, No Preemption, Circular Wait (Remember: MHNC)", Difficulty: model.DifficultyHard, Category: "concept"},
		{Question: "Virtual Memory: What problem does it solve?", Answer: "Allows programs larger than physical RAM to run by using disk as extended memory", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "Context Switch: What gets saved/restored?", Answer: "CPU registers, program counter, stack pointer, memory management info", Difficulty: model.DifficultyMedium, Category: "process"},
		{Question: "Semaphore vs Mutex: When to use each?", Answer: "Semaphore for counting resources (n>1). Mutex for binary lock (only 1 resource)", Difficulty: model.DifficultyMedium, Category: "synchronization"},
		{Question: "File System: What does inode contain?", Answer: "File metadata: permissions, timestamps, size, disk block locations (not filename!)", Difficulty: model.DifficultyHard, Category: "filesystem"},
	},
	"database": {
		{Question: "ACID Properties: What does each letter mean?", Answer: "Atomicity, Consistency, Isolation, Durability - ensures reliable database transactions", Difficulty: model.DifficultyMedium, Category: "fundamentals"},
		{Question: "SQL Joins: INNER vs LEFT JOIN difference?", Answer: "INNER returns only matching rows. LEFT returns all left table rows + matches from right", Difficulty: model.DifficultyMedium, Category: "query"},
		{Question: "Primary vs Foreign Key: Purpose of each?", Answer: "Primary Key: Unique identifier for table row. Foreign Key: Links to primary key in another table", Difficulty: model.DifficultyEasy, Category: "design"},
		{Question: "Database Index: How does it speed up queries?", Answer: "Creates sorted reference structure - like book index. O(log n) instead of O(n) search", Difficulty: model.DifficultyMedium, Category: "performance"},
		{Question: "Normalization: What is 3NF (Third Normal Form)?", Answer: "No transitive dependencies - non-key attributes depend only on primary key, not other non-key attributes", Difficulty: model.DifficultyHard, Category: "design"},
		{Question: "Transaction: What happens on ROLLBACK?", Answer: "Undoes all changes made in current transaction, returns database to previous consistent state", Difficulty: model.DifficultyMedium, Category: "transaction"},
		{Question: "SQL vs NoSQL: When to use NoSQL?", Answer: "Large scale, flexible schema, horizontal scaling needs. SQL for ACID compliance, complex relationships", Difficulty: model.DifficultyMedium, Category: "comparison"},
		{Question: "SELECT Query: Basic syntax order?", Answer: "SELECT, FROM, WHERE, GROUP BY, HAVING, ORDER BY", Difficulty: model.DifficultyEasy, Category: "syntax"},
	},
	"computer_science": {
		{Question: "Time Complexity: O(n^2) vs O(log n) - which is faster for large n?", Answer: "O(log n) is much faster! Example: For n=1000, O(log n) is about 10 operations vs O(n^2)=1,000,000 operations", Difficulty: model.DifficultyMedium, Category: "complexity"},
		{Question: "Data Structure: Stack operations - what are the 2 main ones?", Answer: "PUSH (add to top) and POP (remove from top). Remember: Last In, First Out (LIFO)", Difficulty: model.DifficultyEasy, Category: "fundamentals"},
		{Question: "Recursion Check: What are the 2 essential parts?", Answer: "1) Base case (stopping condition) 2) Recursive case (function calls itself with simpler input)", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "OOP Pillars: Name all 4 fundamental principles", Answer: "Encapsulation, Inheritance, Polymorphism, Abstraction (Remember: EIPA)", Difficulty: model.DifficultyHard, Category: "recall"},
		{Question: "Hash Table: Average time complexity for search/insert?", Answer: "O(1) - constant time! That's why hash tables are so fast for lookups", Difficulty: model.DifficultyMedium, Category: "complexity"},
		{Question: "Tree Traversal: Inorder for BST gives what?", Answer: "Sorted order! Left, Root, Right visits nodes in ascending order", Difficulty: model.DifficultyMedium, Category: "algorithm"},
		{Question: "Binary Search: What's the key requirement?", Answer: "Array must be SORTED first! Otherwise binary search won't work", Difficulty: model.DifficultyEasy, Category: "prerequisite"},
		{Question: "Memory: Stack vs Heap - where are local variables stored?", Answer: "Stack! Local variables, function calls on Stack. Dynamic allocation on Heap.", Difficulty: model.DifficultyMedium, Category: "memory"},
	},
	"software_engineering": {
		{Question: "SDLC Phases: Name the 6 main phases", Answer: "Requirements, Design, Implementation, Testing, Deployment, Maintenance", Difficulty: model.DifficultyMedium, Category: "process"},
		{Question: "Agile vs Waterfall: Key difference?", Answer: "Agile: Iterative, flexible, customer collaboration. Waterfall: Sequential, fixed requirements, documentation heavy", Difficulty: model.DifficultyMedium, Category: "methodology"},
		{Question: "Unit Testing: What should you test?", Answer: "Individual functions/methods in isolation. Test normal cases, edge cases, and error conditions", Difficulty: model.DifficultyMedium, Category: "testing"},
		{Question: "Git: What does 'git merge' vs 'git rebase' do?", Answer: "Merge: Creates new commit combining branches. Rebase: Replays commits on target branch (cleaner history)", Difficulty: model.DifficultyHard, Category: "version_control"},
		{Question: "Design Patterns: Name 3 common patterns", Answer: "Singleton (one instance), Observer (event notification), Factory (object creation)", Difficulty: model.DifficultyMedium, Category: "design"},
		{Question: "Requirements: What are functional vs non-functional?", Answer: "Functional: What system does (features). Non-functional: How system performs (speed, security, usability)", Difficulty: model.DifficultyMedium, Category: "requirements"},
		{Question: "CI/CD: What does continuous integration do?", Answer: "Automatically builds, tests, and integrates code changes frequently to catch issues early", Difficulty: model.DifficultyMedium, Category: "devops"},
		{Question: "Microservices vs Monolith: When to use microservices?", Answer: "Large teams, independent scaling needs, different tech stacks. Monolith for simple apps, small teams", Difficulty: model.DifficultyHard, Category: "architecture"},
	},
	"electrical_engineering": {
		{Question: "Ohm's Law: What's the formula?", Answer: "V = I x R (Voltage = Current x Resistance). Power = V x I = I^2 R = V^2/R", Difficulty: model.DifficultyEasy, Category: "fundamentals"},
		{Question: "AC vs DC: Key differences?", Answer: "AC: Alternating current, changes direction periodically. DC: Direct current, flows in one direction", Difficulty: model.DifficultyEasy, Category: "fundamentals"},
		{Question: "Capacitor: What does it do in AC vs DC?", Answer: "DC: Blocks current after charging. AC: Allows current, reactance = 1/(2*pi*f*C)", Difficulty: model.DifficultyMedium, Category: "components"},
		{Question: "Transistor: Two main functions?", Answer: "1) Switch (on/off for digital circuits) 2) Amplifier (increase signal strength)", Difficulty: model.DifficultyMedium, Category: "components"},
		{Question: "Electromagnetic Induction: Faraday's Law?", Answer: "Changing magnetic field induces voltage. EMF = -N(dPhi/dt) where N=turns, Phi=magnetic flux", Difficulty: model.DifficultyHard, Category: "electromagnetics"},
		{Question: "Transformer: How does it change voltage?", Answer: "Uses mutual induction. Voltage ratio = turns ratio: V2/V1 = N2/N1", Difficulty: model.DifficultyMedium, Category: "power"},
		{Question: "Control System: What is feedback?", Answer: "Output signal fed back to input to automatically correct errors and maintain desired performance", Difficulty: model.DifficultyMedium, Category: "control"},
		{Question: "Signal Processing: Analog vs Digital signals?", Answer: "Analog: Continuous values. Digital: Discrete values (0s and 1s). Digital is noise-resistant", Difficulty: model.DifficultyEasy, Category: "signals"},
	},
	"mechanical_engineering": {
		{Question: "Thermodynamics: What are the 4 laws?", Answer: "0th: Temperature equilibrium. 1st: Energy conservation. 2nd: Entropy increases. 3rd: Absolute zero entropy", Difficulty: model.DifficultyHard, Category: "fundamentals"},
		{Question: "Heat Transfer: Name the 3 modes", Answer: "Conduction (direct contact), Convection (fluid motion), Radiation (electromagnetic waves)", Difficulty: model.DifficultyMedium, Category: "heat_transfer"},
		{Question: "Fluid Mechanics: Bernoulli's Equation principle?", Answer: "Energy conservation in fluid flow: Pressure + Kinetic + Potential energy = constant", Difficulty: model.DifficultyMedium, Category: "fluids"},
		{Question: "Statics: Condition for equilibrium?", Answer: "Sum of forces = 0 and sum of moments = 0", Difficulty: model.DifficultyMedium, Category: "mechanics"},
		{Question: "Stress vs Strain: What's the difference?", Answer: "Stress = Force/Area (N/m^2). Strain = Change in length/Original length (dimensionless)", Difficulty: model.DifficultyMedium, Category: "materials"},
		{Question: "Machine Design: What is factor of safety?", Answer: "Ratio of material strength to expected maximum stress. Accounts for uncertainties and ensures safety", Difficulty: model.DifficultyMedium, Category: "design"},
		{Question: "Manufacturing: CNC vs Conventional machining?", Answer: "CNC: Computer controlled, precise, automated. Conventional: Manual operation, operator skill dependent", Difficulty: model.DifficultyEasy, Category: "manufacturing"},
		{Question: "FEA: What does Finite Element Analysis do?", Answer: "Breaks complex geometry into small elements to solve engineering problems numerically", Difficulty: model.DifficultyMedium, Category: "analysis"},
	},
	"civil_engineering": {
		{Question: "Structural Loads: Name the 3 main types", Answer: "Dead Load (permanent), Live Load (occupancy), Environmental Load (wind, earthquake, snow)", Difficulty: model.DifficultyMedium, Category: "loads"},
		{Question: "Concrete: What is reinforced concrete?", Answer: "Concrete with steel bars/mesh. Concrete handles compression, steel handles tension", Difficulty: model.DifficultyEasy, Category: "materials"},
		{Question: "Foundation Types: Shallow vs Deep?", Answer: "Shallow: Spread footings, mat foundations. Deep: Piles, caissons when soil is weak", Difficulty: model.DifficultyMedium, Category: "foundation"},
		{Question: "Structural Analysis: What is a truss?", Answer: "Framework of triangular units connected at joints. Members carry only axial forces (tension/compression)", Difficulty: model.DifficultyMedium, Category: "structures"},
		{Question: "Soil Mechanics: What is bearing capacity?", Answer: "Maximum pressure soil can support without shear failure. Critical for foundation design", Difficulty: model.DifficultyMedium, Category: "geotechnical"},
		{Question: "Hydraulics: Manning's Equation for?", Answer: "Calculates flow velocity in open channels and pipes based on roughness and slope", Difficulty: model.DifficultyHard, Category: "hydraulics"},
		{Question: "Transportation: What is design speed?", Answer: "Maximum safe speed for road geometric design. Determines curve radius, sight distance, grades", Difficulty: model.DifficultyMedium, Category: "transportation"},
		{Question: "Seismic Design: What is base isolation?", Answer: "Isolates building from ground motion using flexible bearings to reduce earthquake forces", Difficulty: model.DifficultyHard, Category: "earthquake"},
	},
	"mathematics": {
		{Question: "What is a derivative?", Answer: "The rate of change of a function with respect to its variable, representing the slope of the tangent line.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is an integral?", Answer: "The reverse of differentiation, representing the area under a curve or the accumulation of quantities.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is a matrix?", Answer: "A rectangular array of numbers arranged in rows and columns used in linear algebra.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is probability?", Answer: "The measure of the likelihood that an event will occur, expressed as a number between 0 and 1.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is a function?", Answer: "A mathematical relationship that assigns exactly one output value to each input value.", Difficulty: model.DifficultyMedium, Category: "concept"},
	},
	"physics": {
		{Question: "What is Newton's First Law?", Answer: "An object at rest stays at rest, and an object in motion stays in motion, unless acted upon by an external force.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is energy?", Answer: "The capacity to do work or cause change, existing in various forms like kinetic, potential, and thermal.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is electromagnetic radiation?", Answer: "Energy propagated through space as oscillating electric and magnetic fields, including light and radio waves.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is momentum?", Answer: "The product of an object's mass and velocity, representing its motion and resistance to stopping.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is thermodynamics?", Answer: "The branch of physics dealing with heat, temperature, energy, and their relationships.", Difficulty: model.DifficultyMedium, Category: "concept"},
	},
	"biology": {
		{Question: "What is DNA?", Answer: "Deoxyribonucleic acid - the molecule that carries genetic information in living organisms.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is photosynthesis?", Answer: "The process by which plants convert light energy into chemical energy, producing glucose and oxygen.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is mitosis?", Answer: "The process of cell division that produces two identical diploid cells from one parent cell.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is evolution?", Answer: "The process by which species change over time through natural selection and genetic variation.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is an enzyme?", Answer: "A protein that catalyzes biochemical reactions by lowering the activation energy required.", Difficulty: model.DifficultyMedium, Category: "concept"},
	},
	"chemistry": {
		{Question: "What is an atom?", Answer: "The smallest unit of matter that retains the properties of an element, consisting of protons, neutrons, and electrons.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is a chemical bond?", Answer: "The force that holds atoms together in molecules and compounds through sharing or transferring electrons.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is pH?", Answer: "A scale measuring the acidity or alkalinity of a solution, ranging from 0 to 14.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is a catalyst?", Answer: "A substance that increases the rate of a chemical reaction without being consumed in the process.", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "What is the periodic table?", Answer: "An organized arrangement of chemical elements based on their atomic number and properties.", Difficulty: model.DifficultyMedium, Category: "concept"},
	},
	"oop": {
		{Question: "OOP Pillars: What are the 4 fundamental principles?", Answer: "Encapsulation, Inheritance, Polymorphism, Abstraction (Remember: EIPA)", Difficulty: model.DifficultyEasy, Category: "fundamentals"},
		{Question: "Encapsulation: What does it achieve?", Answer: "Data hiding - bundles data and methods together, restricts direct access to internal details", Difficulty: model.DifficultyEasy, Category: "concept"},
		{Question: "Inheritance: What is IS-A relationship?", Answer: "Child class inherits properties/methods from parent. Example: Dog IS-A Animal", Difficulty: model.DifficultyMedium, Category: "concept"},
		{Question: "Polymorphism: Method Overriding vs Overloading?", Answer: "Overriding: Same signature, different implementation. Overloading: Same name, different parameters", Difficulty: model.DifficultyMedium, Category: "comparison"},
		{Question: "Abstract Class vs Interface: Key difference?", Answer: "Abstract class can have concrete methods. Interface only has abstract methods (until Java 8)", Difficulty: model.DifficultyHard, Category: "comparison"},
		{Question: "Constructor: What's its purpose?", Answer: "Special method called when object is created. Initializes object state and allocates memory", Difficulty: model.DifficultyEasy, Category: "definition"},
		{Question: "Access Modifiers: Public vs Private vs Protected?", Answer: "Public: accessible everywhere. Private: same class only. Protected: same package + subclasses", Difficulty: model.DifficultyMedium, Category: "access_control"},
		{Question: "Composition vs Inheritance: When to use composition?", Answer: "Use composition for HAS-A relationships. More flexible than inheritance, avoids tight coupling", Difficulty: model.DifficultyHard, Category: "design"},
		{Question: "Static vs Instance: What's the difference?", Answer: "Static: belongs to class, shared by all objects. Instance: belongs to specific object", Difficulty: model.DifficultyMedium, Category: "memory"},
		{Question: "Design Patterns: Name 3 common patterns", Answer: "Singleton (one instance), Factory (object creation), Observer (event notification)", Difficulty: model.DifficultyHard, Category: "patterns"},
	},
	"os": {
		{Question: "OS Functions: What are the 4 main functions?", Answer: "Process Management, Memory Management, File System Management, I/O Management", Difficulty: model.DifficultyEasy, Category: "fundamentals"},
		{Question: "Process vs Thread: Key differences?", Answer: "Process: independent program with own memory. Thread: lightweight unit within process, shares memory", Difficulty: model.DifficultyMedium, Category: "comparison"},
		{Question: "CPU Scheduling: Name 5 algorithms", Answer: "FCFS, SJF, Round Robin, Priority Scheduling, Multilevel Queue", Difficulty: model.DifficultyMedium, Category: "scheduling"},
		{Question: "Deadlock: What are the 4 necessary conditions?", Answer: "Mutual Exclusion, Hold & Wait, No Preemption, Circular Wait (Remember: MHNC)", Difficulty: model.DifficultyHard, Category: "deadlock"},
		{Question: "Virtual Memory: What problem does it solve?", Answer: "Allows programs larger than physical RAM to run by using disk as extended memory", Difficulty: model.DifficultyMedium, Category: "memory"},
		{Question: "Context Switch: What gets saved/restored?", Answer: "CPU registers, program counter, stack pointer, memory management info", Difficulty: model.DifficultyMedium, Category: "process"},
		{Question: "Semaphore vs Mutex: When to use each?", Answer: "Semaphore: counting resources (n>1). Mutex: binary lock (only 1 resource)", Difficulty: model.DifficultyMedium, Category: "synchronization"},
		{Question: "File System: What does inode contain?", Answer: "File metadata: permissions, timestamps, size, disk block locations (not filename!)", Difficulty: model.DifficultyHard, Category: "filesystem"},
		{Question: "Race Condition: How to prevent it?", Answer: "Use synchronization mechanisms: mutex, semaphore, critical sections, atomic operations", Difficulty: model.DifficultyMedium, Category: "synchronization"},
		{Question: "System Call vs Library Call: Difference?", Answer: "System call: kernel mode switch, OS service. Library call: user mode, no kernel involvement", Difficulty: model.DifficultyHard, Category: "system_calls"},
	},
	"dbms": {
		{Question: "ACID Properties: What does each letter mean?", Answer: "Atomicity, Consistency, Isolation, Durability - ensures reliable database transactions", Difficulty: model.DifficultyMedium, Category: "fundamentals"},
		{Question: "SQL Joins: INNER vs LEFT vs RIGHT vs FULL?", Answer: "INNER: matching rows only. LEFT: all left + matches. RIGHT: all right + matches. FULL: all rows", Difficulty: model.DifficultyMedium, Category: "joins"},
		{Question: "Normalization: What are the first 3 normal forms?", Answer: "1NF: atomic values. 2NF: no partial dependencies. 3NF: no transitive dependencies", Difficulty: model.DifficultyHard, Category: "normalization"},
		{Question: "Database Index: How does B-tree index work?", Answer: "Balanced tree structure. O(log n) search time. Keeps data sorted for range queries", Difficulty: model.DifficultyHard, Category: "indexing"},
		{Question: "Transaction: What happens on COMMIT vs ROLLBACK?", Answer: "COMMIT: makes changes permanent. ROLLBACK: undoes all changes, returns to previous state", Difficulty: model.DifficultyMedium, Category: "transactions"},
		{Question: "Concurrency Control: 2PL vs Timestamp ordering?", Answer: "2PL: two-phase locking (acquire all locks, then release). Timestamp: order transactions by timestamps", Difficulty: model.DifficultyHard, Category: "concurrency"},
		{Question: "SQL vs NoSQL: When to choose NoSQL?", Answer: "Large scale, flexible schema, horizontal scaling, eventual consistency acceptable", Difficulty: model.DifficultyMedium, Category: "database_types"},
		{Question: "ER Model: Entity vs Attribute vs Relationship?", Answer: "Entity: real-world object. Attribute: property of entity. Relationship: association between entities", Difficulty: model.DifficultyEasy, Category: "modeling"},
		{Question: "Query Optimization: How does cost-based optimizer work?", Answer: "Estimates cost of different execution plans, chooses plan with lowest estimated cost", Difficulty: model.DifficultyHard, Category: "optimization"},
		{Question: "Backup Types: Full vs Incremental vs Differential?", Answer: "Full: complete backup. Incremental: changes since last backup. Differential: changes since last full backup", Difficulty: model.DifficultyMedium, Category: "backup"},
	},
}

// FlashcardsFor returns template flashcards for a domain. Domains without
// curated cards return nil.
func FlashcardsFor(domain string) []model.Flashcard {
	return Flashcards[domain]
}
