package faq

// DefaultSeed returns the curated question/answer pairs loaded at first
// startup: general health facts from WHO/CDC/MoHFW guidance, assistant
// identity answers, and emergency resource pointers. Seeding is idempotent;
// Repository.Seed ignores questions that already exist.
func DefaultSeed() []Entry {
	return []Entry{
		{Question: "What is COVID-19?", Answer: "According to WHO, COVID-19 is caused by the SARS-CoV-2 virus."},
		{Question: "How does COVID-19 spread?", Answer: "WHO says it spreads mainly via respiratory droplets and close contact."},
		{Question: "What are the symptoms of flu?", Answer: "CDC lists fever, cough, sore throat, runny nose, body aches, and fatigue."},
		{Question: "Why is handwashing important?", Answer: "WHO explains handwashing prevents spread of infectious diseases."},
		{Question: "How long should I wash my hands?", Answer: "CDC recommends scrubbing with soap for at least 20 seconds."},
		{Question: "What is hypertension?", Answer: "MoHFW defines hypertension as high blood pressure ≥140/90 mmHg."},
		{Question: "What is diabetes?", Answer: "CDC describes it as a condition with high blood sugar due to insulin problems."},
		{Question: "What are signs of dehydration?", Answer: "WHO mentions thirst, dark urine, fatigue, dizziness, and dry mouth."},
		{Question: "Why is exercise important?", Answer: "WHO states it reduces risk of diabetes, obesity, and heart disease."},
		{Question: "How much sleep do adults need?", Answer: "WHO recommends 7–9 hours of quality sleep per night."},
		{Question: "What is a balanced diet?", Answer: "WHO advises including fruits, vegetables, whole grains, protein, and limited sugar/salt."},
		{Question: "What are sources of vitamin C?", Answer: "CDC states citrus fruits, strawberries, bell peppers, and broccoli are rich in vitamin C."},
		{Question: "Why is fiber important?", Answer: "WHO explains fiber aids digestion, prevents constipation, and lowers cholesterol."},
		{Question: "What is BMI?", Answer: "WHO defines Body Mass Index as weight-for-height used to classify underweight, normal, overweight, and obesity."},
		{Question: "What is the normal BMI range?", Answer: "WHO considers 18.5–24.9 as the healthy BMI range."},
		{Question: "How much exercise weekly?", Answer: "WHO recommends at least 150 minutes of moderate activity per week."},
		{Question: "What are healthy snacks?", Answer: "WHO suggests fruits, nuts, yogurt, and whole-grain crackers."},
		{Question: "What is tuberculosis?", Answer: "WHO says TB is a bacterial infection that mainly affects the lungs."},
		{Question: "How can HIV be prevented?", Answer: "WHO recommends safe sex, regular testing, and antiretroviral therapy."},
		{Question: "What is hepatitis B?", Answer: "CDC defines it as a viral infection of the liver, preventable by vaccination."},
		{Question: "What is dengue?", Answer: "WHO describes it as a mosquito-borne viral infection causing fever, rash, and pain."},
		{Question: "How to prevent cholera?", Answer: "WHO advises safe water, good sanitation, and vaccination in risk areas."},
		{Question: "What is measles?", Answer: "WHO states measles is a highly contagious viral disease preventable by vaccine."},
		{Question: "What are early signs of stroke?", Answer: "CDC lists sudden numbness, confusion, trouble speaking, and vision issues."},
		{Question: "How to lower cholesterol naturally?", Answer: "WHO recommends reducing saturated fats, exercising, and eating more fiber."},
		{Question: "What causes osteoporosis?", Answer: "WHO notes low calcium, vitamin D deficiency, aging, and lack of exercise."},
		{Question: "What are symptoms of asthma?", Answer: "CDC mentions wheezing, coughing, chest tightness, and shortness of breath."},
		{Question: "How to prevent cancer?", Answer: "WHO advises avoiding tobacco, alcohol, unhealthy diet, and staying active."},
		{Question: "What is PTSD?", Answer: "WHO defines Post-Traumatic Stress Disorder as triggered by traumatic events."},
		{Question: "What is ADHD?", Answer: "CDC explains it as a brain disorder affecting attention and behavior."},
		{Question: "How to reduce exam stress?", Answer: "WHO suggests proper sleep, time management, and relaxation techniques."},
		{Question: "What is mindfulness?", Answer: "WHO describes it as focusing on the present moment to reduce stress."},
		{Question: "Why is social support important?", Answer: "WHO emphasizes it improves resilience and reduces depression risk."},
		{Question: "What are the 5 moments of hand hygiene?", Answer: "WHO lists: before patient contact, before clean procedure, after exposure risk, after contact, after surroundings."},
		{Question: "How to prevent food poisoning?", Answer: "CDC recommends cooking food properly, avoiding cross-contamination, and refrigeration."},
		{Question: "Why is vaccination important?", Answer: "WHO says vaccines prevent millions of deaths annually."},
		{Question: "How to stay safe during heatwaves?", Answer: "WHO advises hydration, avoiding direct sun, and wearing light clothing."},
		{Question: "How to stay safe during floods?", Answer: "WHO recommends avoiding contaminated water and preventing mosquito breeding."},
		{Question: "When should a child get measles vaccine?", Answer: "WHO recommends at 9–12 months with a second dose later."},
		{Question: "What is exclusive breastfeeding?", Answer: "WHO defines it as giving only breast milk for first 6 months."},
		{Question: "What is Kangaroo Mother Care?", Answer: "WHO describes it as skin-to-skin contact for premature babies."},
		{Question: "Why is vaccination during pregnancy important?", Answer: "WHO recommends tetanus and influenza vaccines to protect mother and child."},
		{Question: "How to ensure good child nutrition?", Answer: "WHO advises breastfeeding, timely solid foods, and balanced meals."},
		{Question: "Can antibiotics cure viral infections?", Answer: "WHO clarifies antibiotics do not work against viruses like flu or COVID-19."},
		{Question: "Does garlic prevent COVID-19?", Answer: "WHO confirms garlic is healthy but does not prevent COVID-19."},
		{Question: "Can vaccines cause autism?", Answer: "CDC states vaccines are safe and not linked to autism."},
		{Question: "Does cold weather cause flu?", Answer: "WHO explains flu is caused by influenza virus, not by cold weather."},
		{Question: "Can drinking alcohol kill coronavirus?", Answer: "WHO warns alcohol does not prevent COVID-19 and is harmful."},
		{Question: "Why is mental health important?", Answer: "WHO emphasizes mental health is vital for overall well-being."},
		{Question: "What are healthy ways to improve sleep?", Answer: "CDC recommends consistent sleep schedules, less screen time, and avoiding caffeine."},
		{Question: "How to deal with depression?", Answer: "WHO advises seeking professional help, staying active, and building social support."},
		{Question: "What is blood?", Answer: "Blood is a bodily fluid in humans and animals that delivers necessary substances such as nutrients and oxygen to cells."},
		{Question: "What is blood pressure?", Answer: "Blood pressure is the pressure of circulating blood on the walls of blood vessels."},
		{Question: "What is the name of this chatbot?", Answer: "My name is Sehat Bandhu 🩺, your AI-powered health assistant."},
		{Question: "Who created you?", Answer: "I was created by the students of India's first AI-augmented multidisciplinary university, Chandigarh University (Uttar Pradesh Campus).\n\nOur team is called Pragati Wave.\n\nTeam Leader: Sayon Mitra\nTeam Members:\n- Satyam Singh\n- Anmol Yadav\n- Kanika Singh\n- Kumar Anand\n- Vijwal Sonkar"},
		{Question: "What can you do?", Answer: "I can answer medical-related questions, provide guidance, and help you find trusted health resources."},
		{Question: "Are you a doctor?", Answer: "⚠️ No, I am not a doctor. I provide AI-generated information for guidance only. For serious conditions, consult a qualified healthcare professional."},
		{Question: "Can you book an appointment?", Answer: "Yes ✅ I can guide you to book an appointment. Please use this link: https://ors.gov.in/copp/ for central government hospitals."},
		{Question: "Book appointment in Uttar Pradesh", Answer: "Please visit the state health portal: https://uphealth.up.nic.in for booking an appointment in Uttar Pradesh."},
		{Question: "Book appointment in Delhi", Answer: "You can book your appointment here: https://dshm.delhi.gov.in"},
		{Question: "What are your trusted sources?", Answer: "I use WHO, Ministry of Health & Family Welfare (India), and other government/trusted medical websites as references."},
		{Question: "What is your purpose?", Answer: "My purpose is to provide quick, reliable, and accessible medical information to everyone."},
		{Question: "Can you give emergency advice?", Answer: "⚠️ In case of an emergency like chest pain, unconsciousness, or heavy bleeding, please call your local emergency number immediately (e.g., 108 in India)."},
	}
}
