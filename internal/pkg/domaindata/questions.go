package domaindata

// Questions maps each domain to curated sample questions. The "general"
// entry serves documents that match no domain.
var Questions = map[string][]string{
	"computer_networks": {
		"What are the seven layers of the OSI model and their functions?",
		"How does TCP/IP protocol suite work?",
		"What is the difference between a router and a switch?",
		"How does DNS resolution work?",
		"What are the different network topologies and their advantages?",
		"How does Ethernet protocol function?",
		"What is the difference between IPv4 and IPv6?",
		"How do firewalls protect networks?",
		"What is subnetting and why is it important?",
		"How does wireless networking work?",
	},
	"operating_systems": {
		"What are the main functions of an operating system?",
		"How does CPU scheduling work and what are common algorithms?",
		"What is the difference between process and thread?",
		"How does virtual memory management work?",
		"What are deadlocks and how can they be prevented?",
		"How do semaphores and mutexes provide synchronization?",
		"What are the different file system structures?",
		"How does paging differ from segmentation?",
		"What are system calls and how do they work?",
		"How does context switching occur in multitasking?",
	},
	"database": {
		"What are the ACID properties in database transactions?",
		"How do different types of SQL joins work?",
		"What is database normalization and why is it important?",
		"What is the difference between primary and foreign keys?",
		"How do database indexes improve query performance?",
		"What are the differences between SQL and NoSQL databases?",
		"How does a relational database management system work?",
		"What are stored procedures and when should you use them?",
		"How do database transactions ensure data consistency?",
		"What are the different types of database relationships?",
	},
	"computer_science": {
		"What are the fundamental data structures and when to use each?",
		"How do different sorting algorithms compare in terms of time complexity?",
		"What is the difference between stack and heap memory?",
		"How does recursion work and when should it be used?",
		"What are the principles of object-oriented programming?",
		"How do hash tables work and what are their applications?",
		"What is Big O notation and why is it important?",
		"How do different tree traversal algorithms work?",
		"What are design patterns and why are they useful?",
		"How does garbage collection work in programming languages?",
	},
	"software_engineering": {
		"What are the phases of the Software Development Life Cycle?",
		"How does Agile methodology differ from Waterfall?",
		"What are the key principles of object-oriented design?",
		"How do you write effective unit tests?",
		"What are design patterns and when should you use them?",
		"How does version control with Git work?",
		"What are the benefits of code reviews?",
		"How do you handle software requirements gathering?",
		"What is continuous integration and deployment?",
		"How do microservices architecture compare to monolithic?",
	},
	"electrical_engineering": {
		"What is Ohm's law and how is it applied?",
		"How do capacitors and inductors behave in AC circuits?",
		"What are the differences between analog and digital circuits?",
		"How do transistors work as switches and amplifiers?",
		"What are the principles of electromagnetic induction?",
		"How do transformers change voltage levels?",
		"What are the types of electrical motors and their applications?",
		"How do control systems maintain desired outputs?",
		"What is signal processing and its applications?",
		"How do power systems distribute electrical energy?",
	},
	"mechanical_engineering": {
		"What are the four laws of thermodynamics?",
		"How does heat transfer occur through conduction, convection, and radiation?",
		"What are the principles of fluid mechanics?",
		"How do you analyze forces in static equilibrium?",
		"What are the different types of materials and their properties?",
		"How does stress differ from strain in materials?",
		"What are the principles of machine design?",
		"How do different manufacturing processes work?",
		"What are the applications of finite element analysis?",
		"How do control systems work in mechanical systems?",
	},
	"civil_engineering": {
		"What are the different types of structural loads?",
		"How do you design reinforced concrete structures?",
		"What are the principles of foundation design?",
		"How do you analyze structural frames and trusses?",
		"What are the properties of construction materials?",
		"How does soil mechanics affect foundation design?",
		"What are the principles of hydraulic engineering?",
		"How do you design transportation systems?",
		"What are seismic design considerations?",
		"How do you perform structural analysis?",
	},
	"mathematics": {
		"What are the fundamental concepts of calculus?",
		"How do you solve systems of linear equations?",
		"What are the properties of different types of functions?",
		"How do you calculate derivatives and integrals?",
		"What are the key principles of probability theory?",
		"How do you work with matrices and vectors?",
		"What are the different types of mathematical proofs?",
		"How do trigonometric functions relate to geometry?",
		"What are the applications of logarithms?",
		"How do you analyze statistical data?",
	},
	"physics": {
		"What are Newton's laws of motion and their applications?",
		"How do electric and magnetic fields interact?",
		"What are the principles of thermodynamics?",
		"How does wave motion work in different media?",
		"What are the key concepts of quantum mechanics?",
		"How do you calculate work, energy, and power?",
		"What are the principles of relativity?",
		"How does light behave as both wave and particle?",
		"What are the fundamental forces in nature?",
		"How do you analyze circular and rotational motion?",
	},
	"biology": {
		"How does cellular respiration produce energy?",
		"What are the stages of mitosis and meiosis?",
		"How does DNA replication work?",
		"What are the principles of genetics and heredity?",
		"How does photosynthesis convert light to chemical energy?",
		"What are the different types of ecosystems?",
		"How does evolution shape species over time?",
		"What are the functions of different organ systems?",
		"How do enzymes catalyze biochemical reactions?",
		"What are the principles of molecular biology?",
	},
	"chemistry": {
		"How do chemical bonds form between atoms?",
		"What are the different types of chemical reactions?",
		"How does the periodic table organize elements?",
		"What are acids, bases, and pH?",
		"How do you balance chemical equations?",
		"What are the principles of thermochemistry?",
		"How does molecular geometry affect chemical properties?",
		"What are the differences between organic and inorganic chemistry?",
		"How do catalysts affect reaction rates?",
		"What are the states of matter and phase transitions?",
	},
	"business": {
		"What are the key principles of strategic management?",
		"How do you analyze market competition?",
		"What are the fundamentals of financial accounting?",
		"How do you develop effective marketing strategies?",
		"What are the principles of organizational behavior?",
		"How do you evaluate investment opportunities?",
		"What are the different leadership styles?",
		"How do you manage supply chain operations?",
		"What are the key performance indicators for business?",
		"How do you conduct market research?",
	},
	"literature": {
		"What are the major themes in this literary work?",
		"How do characters develop throughout the story?",
		"What literary devices does the author use?",
		"How does the setting influence the narrative?",
		"What is the significance of symbolism in the text?",
		"How does the author's style contribute to meaning?",
		"What are the cultural and historical contexts?",
		"How do different interpretations of the work compare?",
		"What are the moral and philosophical questions raised?",
		"How does this work relate to other literature of its time?",
	},
	GeneralDomain: {
		"What are the main topics covered in this document?",
		"What are the key concepts you should understand?",
		"How do the different sections relate to each other?",
		"What examples or case studies are provided?",
		"What are the practical applications mentioned?",
		"What are the important definitions to remember?",
		"How can you apply this knowledge?",
		"What are the key takeaways from this material?",
		"What additional resources might be helpful?",
		"How does this content build on previous knowledge?",
	},
	"oop": {
		"What are the four fundamental principles of Object-Oriented Programming?",
		"How does inheritance promote code reusability?",
		"What is the difference between method overloading and overriding?",
		"How does encapsulation provide data security?",
		"What are abstract classes and when should you use them?",
		"How does polymorphism enable flexible code design?",
		"What is the difference between composition and inheritance?",
		"How do constructors and destructors work?",
		"What are design patterns in OOP?",
		"How do access modifiers control visibility in classes?",
	},
	"os": {
		"What are the main functions of an operating system?",
		"How does process scheduling work in operating systems?",
		"What is the difference between processes and threads?",
		"How does virtual memory management work?",
		"What are deadlocks and how can they be prevented?",
		"How do semaphores and mutexes provide synchronization?",
		"What are the different file system structures?",
		"How does the boot process work in operating systems?",
		"What are system calls and how do they work?",
		"How does memory allocation work in operating systems?",
	},
	"dbms": {
		"What are the ACID properties in database transactions?",
		"How do different types of database joins work?",
		"What is database normalization and its normal forms?",
		"How do database indexes improve query performance?",
		"What are the differences between SQL and NoSQL databases?",
		"How does concurrency control work in databases?",
		"What are stored procedures and their advantages?",
		"How does query optimization work in DBMS?",
		"What are the different types of database relationships?",
		"How do backup and recovery mechanisms work in databases?",
	},
}

// QuestionsFor returns the template questions for a domain, falling back to
// the general set when the domain is unknown.
func QuestionsFor(domain string) []string {
	if qs, ok := Questions[domain]; ok {
		return qs
	}
	return Questions[GeneralDomain]
}
